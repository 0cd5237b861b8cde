package utils

import "math"

const earthRadius = 6371000 // metres

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// CalculateHaversineDistance returns the great-circle distance between two
// points in metres.
func CalculateHaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// DistanceKm is CalculateHaversineDistance between two coordinates, in kilometres.
func DistanceKm(from, to Coordinate) float64 {
	return CalculateHaversineDistance(from.Lat, from.Lon, to.Lat, to.Lon) / 1000
}

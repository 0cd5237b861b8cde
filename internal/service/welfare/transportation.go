package welfare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/welfare"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

const DefaultTransportRatePerKm = 4000

// DefaultOffice is the company location, in Thu Duc.
var DefaultOffice = utils.Coordinate{Lat: 10.8494, Lon: 106.7537}

// DefaultRegions are the districts with a known commute.
var DefaultRegions = map[string]utils.Coordinate{
	"quan 1":     {Lat: 10.7756, Lon: 106.7019},
	"quan 3":     {Lat: 10.7843, Lon: 106.6844},
	"quan 4":     {Lat: 10.7579, Lon: 106.7013},
	"quan 5":     {Lat: 10.7540, Lon: 106.6634},
	"quan 7":     {Lat: 10.7340, Lon: 106.7216},
	"quan 10":    {Lat: 10.7743, Lon: 106.6670},
	"binh thanh": {Lat: 10.8106, Lon: 106.7091},
	"go vap":     {Lat: 10.8387, Lon: 106.6653},
	"phu nhuan":  {Lat: 10.7991, Lon: 106.6803},
	"tan binh":   {Lat: 10.8015, Lon: 106.6526},
	"thu duc":    {Lat: 10.8494, Lon: 106.7537},
}

// RouteTable maps a region to its commute distance in kilometres.
type RouteTable struct {
	km map[string]decimal.Decimal
}

func NewRouteTable(km map[string]decimal.Decimal) (RouteTable, error) {
	t := RouteTable{km: make(map[string]decimal.Decimal, len(km))}
	for region, d := range km {
		key := normalizeRegion(region)
		if key == "" || d.IsNegative() {
			return RouteTable{}, fmt.Errorf("%w: %q", welfare.ErrInvalidRoute, region)
		}
		t.km[key] = d
	}
	return t, nil
}

// RouteTableFromCoordinates measures each region's great-circle distance to
// office, rounded to 0.1 km.
func RouteTableFromCoordinates(office utils.Coordinate, regions map[string]utils.Coordinate) RouteTable {
	t := RouteTable{km: make(map[string]decimal.Decimal, len(regions))}
	for region, c := range regions {
		t.km[normalizeRegion(region)] = decimal.NewFromFloat(utils.DistanceKm(office, c)).Round(1)
	}
	return t
}

// ParseRoutes reads "region=km" entries separated by semicolons.
func ParseRoutes(s string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal)
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		region, km, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", welfare.ErrInvalidRoute, entry)
		}
		d, err := decimal.NewFromString(strings.TrimSpace(km))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", welfare.ErrInvalidRoute, entry)
		}
		out[region] = d
	}
	return out, nil
}

// With returns a copy of t with extra overriding t.
func (t RouteTable) With(extra RouteTable) RouteTable {
	merged := RouteTable{km: make(map[string]decimal.Decimal, len(t.km)+len(extra.km))}
	for k, v := range t.km {
		merged.km[k] = v
	}
	for k, v := range extra.km {
		merged.km[k] = v
	}
	return merged
}

// Distance looks up the whole address first, then the part before its first
// comma ("Quan 1, TP.HCM" -> "quan 1").
func (t RouteTable) Distance(address string) (decimal.Decimal, bool) {
	key := normalizeRegion(address)
	if d, ok := t.km[key]; ok {
		return d, true
	}
	if region, _, found := strings.Cut(key, ","); found {
		if d, ok := t.km[strings.TrimSpace(region)]; ok {
			return d, true
		}
	}
	return decimal.Zero, false
}

func (t RouteTable) Regions() []string {
	out := make([]string, 0, len(t.km))
	for k := range t.km {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func normalizeRegion(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Transportation pays a per-kilometre commuting allowance.
type Transportation struct {
	ratePerKm decimal.Decimal
	routes    RouteTable
}

func NewTransportation(ratePerKm decimal.Decimal, routes RouteTable) (*Transportation, error) {
	if ratePerKm.IsNegative() {
		return nil, welfare.ErrNegativeRate
	}
	return &Transportation{ratePerKm: ratePerKm, routes: routes}, nil
}

func (p *Transportation) Details() welfare.Details {
	return welfare.Details{
		Kind:        welfare.KindTransportation,
		Type:        welfare.TypeAllowance,
		Name:        "Transportation allowance",
		Description: "Commute distance to the office times " + p.ratePerKm.String() + " per km",
	}
}

// IsEligible currently admits everyone. Tenure or attendance gates belong here.
func (p *Transportation) IsEligible(employee.Employee, attendance.Summarizer, int, int) bool {
	return true
}

// CalculateImpact is zero for addresses missing from the route table.
func (p *Transportation) CalculateImpact(emp employee.Employee) decimal.Decimal {
	km, ok := p.routes.Distance(emp.Profile().Address)
	if !ok {
		return decimal.Zero
	}
	return km.Mul(p.ratePerKm)
}

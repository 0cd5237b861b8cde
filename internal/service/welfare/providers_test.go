package welfare

import (
	"testing"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/welfare"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendance struct {
	counts map[attendance.DayType]int
}

func (f fakeAttendance) Totals(employeeID string, _, _ int) attendance.Totals {
	return attendance.Totals{EmployeeID: employeeID}
}

func (f fakeAttendance) CountDayTypes(string, int, int) map[attendance.DayType]int {
	out := make(map[attendance.DayType]int, len(f.counts))
	for k, v := range f.counts {
		out[k] = v
	}
	return out
}

func allThreeTypes() fakeAttendance {
	return fakeAttendance{counts: map[attendance.DayType]int{
		attendance.DayTypeNormal:   2,
		attendance.DayTypeOvertime: 1,
		attendance.DayTypeHoliday:  1,
	}}
}

func newE1(t *testing.T, monthsWorked int, address string) employee.Employee {
	t.Helper()
	e, err := employee.NewFulltime(
		employee.Profile{ID: "E1", Name: "Nguyen Van A", Address: address},
		decimal.NewFromInt(15000000), monthsWorked,
		salary.Rates{Hourly: decimal.NewFromInt(50000), Overtime: decimal.NewFromInt(75000), Holiday: decimal.NewFromInt(100000)},
	)
	require.NoError(t, err)
	return e
}

func newSocialInsurance(t *testing.T) *SocialInsurance {
	t.Helper()
	p, err := NewSocialInsurance(decimal.RequireFromString(DefaultSocialInsuranceRate), DefaultSocialInsuranceMinMonths)
	require.NoError(t, err)
	return p
}

func TestSocialInsurance_Threshold(t *testing.T) {
	p := newSocialInsurance(t)
	cases := []struct {
		months   int
		eligible bool
		impact   int64
	}{
		{0, false, 0},
		{5, false, 0},
		{6, true, -1575000},
		{12, true, -1575000},
	}
	for _, c := range cases {
		e := newE1(t, c.months, "")
		assert.Equal(t, c.eligible, p.IsEligible(e, fakeAttendance{}, 5, 2024), "months=%d", c.months)
		assert.True(t, p.CalculateImpact(e).Equal(decimal.NewFromInt(c.impact)), "months=%d impact=%s", c.months, p.CalculateImpact(e))
	}
}

func TestSocialInsurance_Details(t *testing.T) {
	d := newSocialInsurance(t).Details()

	assert.Equal(t, welfare.TypeDeduction, d.Type)
	assert.Equal(t, welfare.KindSocialInsurance, d.Kind)
	assert.Contains(t, d.Description, "10.5%")
}

func TestNewSocialInsurance_RejectsNegativeInput(t *testing.T) {
	_, err := NewSocialInsurance(decimal.NewFromInt(-1), 6)
	assert.ErrorIs(t, err, welfare.ErrNegativeRate)

	_, err = NewSocialInsurance(decimal.Zero, -1)
	assert.ErrorIs(t, err, welfare.ErrNegativeMinMonths)
}

func TestBonus_RequiresAllThreeDayTypes(t *testing.T) {
	p, err := NewBonus(decimal.NewFromInt(500000))
	require.NoError(t, err)
	e := newE1(t, 12, "")

	assert.True(t, p.IsEligible(e, allThreeTypes(), 5, 2024))

	for _, missing := range []attendance.DayType{attendance.DayTypeNormal, attendance.DayTypeOvertime, attendance.DayTypeHoliday} {
		att := allThreeTypes()
		delete(att.counts, missing)
		assert.False(t, p.IsEligible(e, att, 5, 2024), "missing %s", missing)
	}
}

func TestBonus_IsFlat(t *testing.T) {
	p, err := NewBonus(decimal.NewFromInt(500000))
	require.NoError(t, err)
	e := newE1(t, 12, "")
	more := allThreeTypes()
	more.counts[attendance.DayTypeNormal]++

	assert.True(t, p.IsEligible(e, more, 5, 2024))
	assert.True(t, p.CalculateImpact(e).Equal(decimal.NewFromInt(500000)))

	_, err = NewBonus(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, welfare.ErrNegativeAmount)
}

func TestTransportation_CalculateImpact(t *testing.T) {
	routes, err := NewRouteTable(map[string]decimal.Decimal{"Quan 1": decimal.NewFromInt(12), "binh  thanh": decimal.RequireFromString("6.5")})
	require.NoError(t, err)
	p, err := NewTransportation(decimal.NewFromInt(DefaultTransportRatePerKm), routes)
	require.NoError(t, err)

	cases := map[string]int64{
		"Quan 1, TP.HCM":  48000,
		"quan 1":          48000,
		"Binh Thanh":      26000,
		"Quan 12, TP.HCM": 0,
		"":                0,
	}
	for address, want := range cases {
		e := newE1(t, 1, address)
		assert.True(t, p.IsEligible(e, fakeAttendance{}, 5, 2024))
		assert.True(t, p.CalculateImpact(e).Equal(decimal.NewFromInt(want)), "%q -> %s", address, p.CalculateImpact(e))
	}
}

func TestRouteTableFromCoordinates(t *testing.T) {
	office := utils.Coordinate{Lat: 0, Lon: 0}
	routes := RouteTableFromCoordinates(office, map[string]utils.Coordinate{
		"Office":  office,
		"North 1": {Lat: 1, Lon: 0},
	})

	here, ok := routes.Distance("office")
	require.True(t, ok)
	assert.True(t, here.IsZero())

	north, ok := routes.Distance("North 1, somewhere")
	require.True(t, ok)
	assert.True(t, north.Equal(decimal.RequireFromString("111.2")), north.String())
	assert.Equal(t, []string{"north 1", "office"}, routes.Regions())
}

func TestDefaultRoutes_CoverDistricts(t *testing.T) {
	routes := RouteTableFromCoordinates(DefaultOffice, DefaultRegions)

	home, ok := routes.Distance("Thu Duc")
	require.True(t, ok)
	assert.True(t, home.IsZero())

	d1, ok := routes.Distance("Quan 1, TP.HCM")
	require.True(t, ok)
	assert.True(t, d1.GreaterThan(decimal.NewFromInt(5)))
	assert.True(t, d1.LessThan(decimal.NewFromInt(20)))
}

func TestParseRoutes(t *testing.T) {
	km, err := ParseRoutes("Quan 1=12; Quan 7 = 18.5 ;")
	require.NoError(t, err)
	extra, err := NewRouteTable(km)
	require.NoError(t, err)

	base, err := NewRouteTable(map[string]decimal.Decimal{"quan 1": decimal.NewFromInt(99), "quan 3": decimal.NewFromInt(13)})
	require.NoError(t, err)
	merged := base.With(extra)

	d, _ := merged.Distance("Quan 1")
	assert.True(t, d.Equal(decimal.NewFromInt(12)))
	d, _ = merged.Distance("quan 7")
	assert.True(t, d.Equal(decimal.RequireFromString("18.5")))
	d, _ = merged.Distance("Quan 3")
	assert.True(t, d.Equal(decimal.NewFromInt(13)))

	for _, bad := range []string{"Quan 1", "Quan 1=far"} {
		_, err := ParseRoutes(bad)
		assert.ErrorIs(t, err, welfare.ErrInvalidRoute, bad)
	}
	_, err = NewRouteTable(map[string]decimal.Decimal{"x": decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, welfare.ErrInvalidRoute)
}

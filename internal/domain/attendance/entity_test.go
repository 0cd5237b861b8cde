package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(clock string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04:05", "2024-05-02 "+clock)
	return t
}

func TestRecord_WorkedHours(t *testing.T) {
	cases := []struct {
		name      string
		in, out   string
		wantHours int
	}{
		{"full day", "08:00:00", "16:00:00", 8},
		{"truncated", "08:00:00", "10:59:59", 2},
		{"under an hour", "08:00:00", "08:59:00", 0},
		{"negative shift", "17:00:00", "08:00:00", 0},
		{"empty shift", "08:00:00", "08:00:00", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Record{CheckIn: at(c.in), CheckOut: at(c.out)}
			assert.Equal(t, c.wantHours, r.WorkedHours())
		})
	}
}

func TestTotals_Add_OneBucketPerRecord(t *testing.T) {
	var totals Totals
	base := Record{CheckIn: at("08:00:00"), CheckOut: at("12:00:00")}

	for _, dt := range []DayType{DayTypeNormal, DayTypeOvertime, DayTypeHoliday, DayTypeLeave, DayTypeLeaveUnpaid} {
		r := base
		r.DayType = dt
		totals.Add(r)
	}

	assert.Equal(t, Totals{NormalHours: 4, OvertimeHours: 4, HolidayDays: 1, PaidLeaveDays: 1, UnpaidLeaveDays: 1}, totals)
}

func TestRecord_InPeriod(t *testing.T) {
	r := Record{WorkDate: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)}

	assert.True(t, r.InPeriod(5, 2024))
	assert.False(t, r.InPeriod(6, 2024))
	assert.False(t, r.InPeriod(5, 2023))
}

func TestRecord_Validate(t *testing.T) {
	assert.NoError(t, Record{EmployeeID: "E1", DayType: DayTypeLeave}.Validate())
	assert.ErrorIs(t, Record{DayType: DayTypeLeave}.Validate(), ErrInvalidRecord)
	assert.ErrorIs(t, Record{EmployeeID: "E1"}.Validate(), ErrUnknownDayType)
}

func TestHolidayCalendar(t *testing.T) {
	cal, err := NewHolidayCalendar([]string{"09-02", "01-01", " ", "04-30"})
	require.NoError(t, err)

	assert.Equal(t, []string{"01-01", "04-30", "09-02"}, cal.Days())
	assert.True(t, cal.IsHoliday(time.Date(2031, 1, 1, 10, 0, 0, 0, time.UTC)))
	assert.False(t, cal.IsHoliday(time.Date(2031, 5, 1, 10, 0, 0, 0, time.UTC)))

	_, err = NewHolidayCalendar([]string{"13-01"})
	assert.ErrorIs(t, err, ErrInvalidHoliday)
}

func TestSnapshot_AnswersOnlyForItsEmployeeAndPeriod(t *testing.T) {
	totals := Totals{EmployeeID: "E1", NormalHours: 16}
	snap := NewSnapshot(totals, map[DayType]int{DayTypeNormal: 2}, 5, 2024)

	assert.Equal(t, totals, snap.Totals("E1", 5, 2024))
	assert.Equal(t, map[DayType]int{DayTypeNormal: 2}, snap.CountDayTypes("E1", 5, 2024))
	assert.Equal(t, Totals{EmployeeID: "E2"}, snap.Totals("E2", 5, 2024))
	assert.Equal(t, Totals{EmployeeID: "E1"}, snap.Totals("E1", 6, 2024))
	assert.Empty(t, snap.CountDayTypes("E1", 5, 2023))
}

func TestSnapshot_CountsAreCopied(t *testing.T) {
	counts := map[DayType]int{DayTypeLeave: 1}
	snap := NewSnapshot(Totals{EmployeeID: "E1"}, counts, 5, 2024)

	// Act
	counts[DayTypeLeave] = 9
	got := snap.CountDayTypes("E1", 5, 2024)
	got[DayTypeLeave] = 7

	// Assert
	assert.Equal(t, 1, snap.CountDayTypes("E1", 5, 2024)[DayTypeLeave])
}

// fixedSummarizer has no atomic read.
type fixedSummarizer struct{}

func (fixedSummarizer) Totals(employeeID string, _, _ int) Totals {
	return Totals{EmployeeID: employeeID, OvertimeHours: 3}
}

func (fixedSummarizer) CountDayTypes(string, int, int) map[DayType]int {
	return map[DayType]int{DayTypeOvertime: 1}
}

func TestSnapshotOf_FallsBackToSeparateReads(t *testing.T) {
	// Act
	snap := SnapshotOf(fixedSummarizer{}, "E1", 5, 2024)

	// Assert
	assert.Equal(t, 3, snap.Totals("E1", 5, 2024).OvertimeHours)
	assert.Equal(t, 1, snap.CountDayTypes("E1", 5, 2024)[DayTypeOvertime])
}

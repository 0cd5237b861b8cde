package attendance

import (
	"fmt"
	"maps"
	"time"
)

// DayType classifies an attendance entry and decides which total it feeds.
type DayType string

const (
	DayTypeNormal      DayType = "normal"
	DayTypeOvertime    DayType = "overtime"
	DayTypeHoliday     DayType = "holiday"
	DayTypeLeave       DayType = "leave"
	DayTypeLeaveUnpaid DayType = "leave_unpaid"
)

// Valid reports whether d is one of the known day types.
func (d DayType) Valid() bool {
	switch d {
	case DayTypeNormal, DayTypeOvertime, DayTypeHoliday, DayTypeLeave, DayTypeLeaveUnpaid:
		return true
	}
	return false
}

// CountsHours reports whether records of this type are summed as worked hours
// rather than counted as whole days.
func (d DayType) CountsHours() bool {
	return d == DayTypeNormal || d == DayTypeOvertime
}

// Record is one attendance entry. It is never modified after it has been added.
type Record struct {
	EmployeeID string
	WorkDate   time.Time
	CheckIn    time.Time
	CheckOut   time.Time
	DayType    DayType
}

// WorkedHours returns the whole hours between check-in and check-out,
// truncated toward zero. A check-out before check-in yields zero.
func (r Record) WorkedHours() int {
	if r.CheckOut.Before(r.CheckIn) {
		return 0
	}
	return int(r.CheckOut.Sub(r.CheckIn) / time.Hour)
}

// InPeriod reports whether the record's work date falls in month/year.
func (r Record) InPeriod(month, year int) bool {
	return int(r.WorkDate.Month()) == month && r.WorkDate.Year() == year
}

// Totals - Aggregate of one employee's records for one pay period
type Totals struct {
	EmployeeID      string `json:"employee_id"`
	NormalHours     int    `json:"normal_hours"`
	OvertimeHours   int    `json:"overtime_hours"`
	HolidayDays     int    `json:"holiday_days"`
	UnpaidLeaveDays int    `json:"unpaid_leave_days"`
	PaidLeaveDays   int    `json:"paid_leave_days"`
}

// Add folds a single record into the matching bucket.
func (t *Totals) Add(r Record) {
	switch r.DayType {
	case DayTypeNormal:
		t.NormalHours += r.WorkedHours()
	case DayTypeOvertime:
		t.OvertimeHours += r.WorkedHours()
	case DayTypeHoliday:
		t.HolidayDays++
	case DayTypeLeave:
		t.PaidLeaveDays++
	case DayTypeLeaveUnpaid:
		t.UnpaidLeaveDays++
	}
}

// Summarizer is the read side of the attendance store used by salary and
// welfare calculations.
type Summarizer interface {
	Totals(employeeID string, month, year int) Totals
	CountDayTypes(employeeID string, month, year int) map[DayType]int
}

// Snapshot is one employee's attendance for one period read in a single step.
// It answers only for that employee and period; anything else is zero.
type Snapshot struct {
	month, year int
	totals      Totals
	counts      map[DayType]int
}

func NewSnapshot(totals Totals, counts map[DayType]int, month, year int) Snapshot {
	return Snapshot{month: month, year: year, totals: totals, counts: maps.Clone(counts)}
}

func (s Snapshot) covers(employeeID string, month, year int) bool {
	return employeeID == s.totals.EmployeeID && month == s.month && year == s.year
}

// Totals implements Summarizer.
func (s Snapshot) Totals(employeeID string, month, year int) Totals {
	if !s.covers(employeeID, month, year) {
		return Totals{EmployeeID: employeeID}
	}
	return s.totals
}

// CountDayTypes implements Summarizer.
func (s Snapshot) CountDayTypes(employeeID string, month, year int) map[DayType]int {
	if !s.covers(employeeID, month, year) {
		return make(map[DayType]int)
	}
	counts := maps.Clone(s.counts)
	if counts == nil {
		counts = make(map[DayType]int)
	}
	return counts
}

// Snapshotter is a Summarizer that can read one employee's period atomically.
type Snapshotter interface {
	Snapshot(employeeID string, month, year int) Snapshot
}

// SnapshotOf reads employeeID's period from s, atomically when s is a
// Snapshotter.
func SnapshotOf(s Summarizer, employeeID string, month, year int) Snapshot {
	if ss, ok := s.(Snapshotter); ok {
		return ss.Snapshot(employeeID, month, year)
	}
	return NewSnapshot(s.Totals(employeeID, month, year), s.CountDayTypes(employeeID, month, year), month, year)
}

// Validate checks the only two things a record must have.
func (r Record) Validate() error {
	if r.EmployeeID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyEmployee)
	}
	if !r.DayType.Valid() {
		return fmt.Errorf("%w: %w %q", ErrInvalidRecord, ErrUnknownDayType, r.DayType)
	}
	return nil
}

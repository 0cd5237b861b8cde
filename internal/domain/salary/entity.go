package salary

import (
	"github.com/shopspring/decimal"
)

// StandardWorkdayHours is the length of one working day used to price unpaid leave.
const StandardWorkdayHours = 8

// Rates - hourly, overtime-hourly and per-holiday pay rates
type Rates struct {
	Hourly   decimal.Decimal `json:"hourly_rate"`
	Overtime decimal.Decimal `json:"overtime_rate"`
	Holiday  decimal.Decimal `json:"holiday_rate"`
}

// Validate rejects negative rates.
func (r Rates) Validate() error {
	if r.Hourly.IsNegative() || r.Overtime.IsNegative() || r.Holiday.IsNegative() {
		return ErrNegativeRate
	}
	return nil
}

// Components - raw attendance-derived pay before welfare adjustments
type Components struct {
	Basic        decimal.Decimal
	Overtime     decimal.Decimal
	Holiday      decimal.Decimal
	LeavePenalty decimal.Decimal
}

// Adjustments - welfare sums applied on top of the base components.
// All three are non-negative magnitudes.
type Adjustments struct {
	Bonuses    decimal.Decimal
	Allowances decimal.Decimal
	Deductions decimal.Decimal
}

// Details - full salary breakdown for one employee and one period
type Details struct {
	BasicSalary    decimal.Decimal `json:"basic_salary"`
	OvertimeSalary decimal.Decimal `json:"overtime_salary"`
	HolidaySalary  decimal.Decimal `json:"holiday_salary"`
	Bonuses        decimal.Decimal `json:"bonuses"`
	Allowances     decimal.Decimal `json:"allowances"`
	Deductions     decimal.Decimal `json:"deductions"`
	TotalSalary    decimal.Decimal `json:"total_salary"`

	// LeavePenalty is the part of Deductions caused by unpaid leave.
	LeavePenalty decimal.Decimal `json:"leave_penalty"`
}

// NewDetails assembles a breakdown. The leave penalty is folded into
// Deductions and TotalSalary is always derived, never supplied.
func NewDetails(basic, overtime, holiday decimal.Decimal, adj Adjustments, leavePenalty decimal.Decimal) Details {
	d := Details{
		BasicSalary:    basic,
		OvertimeSalary: overtime,
		HolidaySalary:  holiday,
		Bonuses:        adj.Bonuses,
		Allowances:     adj.Allowances,
		Deductions:     adj.Deductions.Add(leavePenalty),
		LeavePenalty:   leavePenalty,
	}
	d.TotalSalary = d.expectedTotal()
	return d
}

func (d Details) expectedTotal() decimal.Decimal {
	return d.BasicSalary.
		Add(d.OvertimeSalary).
		Add(d.HolidaySalary).
		Add(d.Bonuses).
		Add(d.Allowances).
		Sub(d.Deductions)
}

// Balanced reports whether TotalSalary matches its components exactly.
func (d Details) Balanced() bool {
	return d.TotalSalary.Equal(d.expectedTotal())
}

// Gross is everything earned before deductions.
func (d Details) Gross() decimal.Decimal {
	return d.TotalSalary.Add(d.Deductions)
}

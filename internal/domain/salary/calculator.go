package salary

import (
	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

var standardWorkday = decimal.NewFromInt(StandardWorkdayHours)

// Calculator turns attendance totals into pay components. It holds no other
// state and its rates cannot change after construction.
type Calculator struct {
	rates Rates
}

func NewCalculator(rates Rates) Calculator {
	return Calculator{rates: rates}
}

func (c Calculator) Rates() Rates {
	return c.rates
}

// Compute prices one period of attendance.
func (c Calculator) Compute(t attendance.Totals) Components {
	return Components{
		Basic:        decimal.NewFromInt(int64(t.NormalHours)).Mul(c.rates.Hourly),
		Overtime:     decimal.NewFromInt(int64(t.OvertimeHours)).Mul(c.rates.Overtime),
		Holiday:      decimal.NewFromInt(int64(t.HolidayDays)).Mul(c.rates.Holiday),
		LeavePenalty: decimal.NewFromInt(int64(t.UnpaidLeaveDays)).Mul(c.rates.Hourly).Mul(standardWorkday),
	}
}

package welfare

import (
	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/welfare"
	"github.com/shopspring/decimal"
)

// Bonus pays a flat amount to employees who logged normal, overtime and
// holiday attendance in the same month.
type Bonus struct {
	amount decimal.Decimal
}

func NewBonus(amount decimal.Decimal) (*Bonus, error) {
	if amount.IsNegative() {
		return nil, welfare.ErrNegativeAmount
	}
	return &Bonus{amount: amount}, nil
}

func (p *Bonus) Details() welfare.Details {
	return welfare.Details{
		Kind:        welfare.KindBonus,
		Type:        welfare.TypeBonus,
		Name:        "Revenue bonus",
		Description: "Flat bonus for months with normal, overtime and holiday attendance",
	}
}

func (p *Bonus) IsEligible(emp employee.Employee, att attendance.Summarizer, month, year int) bool {
	counts := att.CountDayTypes(emp.ID(), month, year)
	return counts[attendance.DayTypeNormal] > 0 &&
		counts[attendance.DayTypeOvertime] > 0 &&
		counts[attendance.DayTypeHoliday] > 0
}

func (p *Bonus) CalculateImpact(employee.Employee) decimal.Decimal {
	return p.amount
}

package welfare

import (
	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/welfare"
	"github.com/shopspring/decimal"
)

const (
	DefaultSocialInsuranceRate      = "0.105"
	DefaultSocialInsuranceMinMonths = 6
)

// SocialInsurance withholds the employee's contribution once they have
// worked the minimum number of months.
type SocialInsurance struct {
	rate      decimal.Decimal
	minMonths int
}

func NewSocialInsurance(rate decimal.Decimal, minMonths int) (*SocialInsurance, error) {
	if rate.IsNegative() {
		return nil, welfare.ErrNegativeRate
	}
	if minMonths < 0 {
		return nil, welfare.ErrNegativeMinMonths
	}
	return &SocialInsurance{rate: rate, minMonths: minMonths}, nil
}

func (p *SocialInsurance) Details() welfare.Details {
	return welfare.Details{
		Kind:        welfare.KindSocialInsurance,
		Type:        welfare.TypeDeduction,
		Name:        "Social insurance",
		Description: "Employee contribution of " + p.rate.Shift(2).String() + "% of base pay",
	}
}

func (p *SocialInsurance) IsEligible(emp employee.Employee, _ attendance.Summarizer, _, _ int) bool {
	return emp.MonthsWorked() >= p.minMonths
}

// CalculateImpact is never positive, and zero below the tenure threshold.
func (p *SocialInsurance) CalculateImpact(emp employee.Employee) decimal.Decimal {
	if emp.MonthsWorked() < p.minMonths {
		return decimal.Zero
	}
	return emp.BasePay().Mul(p.rate).Neg()
}

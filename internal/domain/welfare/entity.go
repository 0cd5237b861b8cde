package welfare

import (
	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/shopspring/decimal"
)

// Type enum - declared category of a welfare item
type Type string

const (
	TypeBonus     Type = "bonus"
	TypeAllowance Type = "allowance"
	TypeDeduction Type = "deduction"
)

// Kind enum - concrete provider implementation
type Kind string

const (
	KindSocialInsurance Kind = "social_insurance"
	KindBonus           Kind = "bonus"
	KindTransportation  Kind = "transportation"
)

// Details - descriptive metadata fixed when a provider is constructed
type Details struct {
	Kind        Kind   `json:"kind"`
	Type        Type   `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Provider is one welfare rule. Providers are evaluated independently and
// never see each other's results.
type Provider interface {
	Details() Details
	IsEligible(emp employee.Employee, att attendance.Summarizer, month, year int) bool
	// CalculateImpact returns a signed amount: negative values are deductions.
	CalculateImpact(emp employee.Employee) decimal.Decimal
}

// Line is one applied welfare item on a payslip.
type Line struct {
	Name   string          `json:"name"`
	Type   Type            `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// Totals - bucketed welfare sums for one employee and period.
// Every bucket is a non-negative magnitude.
type Totals struct {
	Bonuses    decimal.Decimal `json:"bonuses"`
	Allowances decimal.Decimal `json:"allowances"`
	Deductions decimal.Decimal `json:"deductions"`
	Lines      []Line          `json:"lines"`
}

// NewTotals returns zeroed buckets.
func NewTotals() Totals {
	return Totals{
		Bonuses:    decimal.Zero,
		Allowances: decimal.Zero,
		Deductions: decimal.Zero,
		Lines:      []Line{},
	}
}

// Apply buckets a signed impact by its sign. Negative impacts are deductions
// whatever the declared type; positive ones go to Bonuses for bonus-type
// providers and to Allowances otherwise. Zero impacts are dropped.
func (t *Totals) Apply(d Details, impact decimal.Decimal) {
	switch impact.Sign() {
	case 0:
		return
	case -1:
		t.Deductions = t.Deductions.Add(impact.Neg())
		t.Lines = append(t.Lines, Line{Name: d.Name, Type: TypeDeduction, Amount: impact})
	default:
		lineType := TypeAllowance
		if d.Type == TypeBonus {
			t.Bonuses = t.Bonuses.Add(impact)
			lineType = TypeBonus
		} else {
			t.Allowances = t.Allowances.Add(impact)
		}
		t.Lines = append(t.Lines, Line{Name: d.Name, Type: lineType, Amount: impact})
	}
}

func (t Totals) Adjustments() salary.Adjustments {
	return salary.Adjustments{
		Bonuses:    t.Bonuses,
		Allowances: t.Allowances,
		Deductions: t.Deductions,
	}
}

package employee

import (
	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/shopspring/decimal"
)

// Fulltime is paid from attendance at its own rates. The base salary is a
// nominal reference figure, not a floor.
type Fulltime struct {
	base
	calc salary.Calculator
}

func NewFulltime(p Profile, baseSalary decimal.Decimal, monthsWorked int, rates salary.Rates) (*Fulltime, error) {
	b, err := newBase(p, baseSalary, monthsWorked)
	if err != nil {
		return nil, err
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Fulltime{base: b, calc: salary.NewCalculator(rates)}, nil
}

func (e *Fulltime) Kind() Kind { return KindFulltime }

func (e *Fulltime) Rates() salary.Rates { return e.calc.Rates() }

func (e *Fulltime) ComputeSalary(att attendance.Summarizer, month, year int, adj salary.Adjustments) salary.Details {
	return attendancePay(e.calc, att, e.ID(), month, year, adj)
}

func (e *Fulltime) Record() Record {
	rates := e.Rates()
	return newRecord(e, &rates)
}

func (e *Fulltime) Clone() Employee {
	return &Fulltime{base: e.copy(), calc: e.calc}
}

// Contractual is paid for hours worked at an agreed hourly-equivalent rate.
// The contract amount is advisory.
type Contractual struct {
	base
	calc salary.Calculator
}

func NewContractual(p Profile, contractAmount decimal.Decimal, monthsWorked int, rates salary.Rates) (*Contractual, error) {
	b, err := newBase(p, contractAmount, monthsWorked)
	if err != nil {
		return nil, err
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Contractual{base: b, calc: salary.NewCalculator(rates)}, nil
}

func (e *Contractual) Kind() Kind { return KindContractual }

func (e *Contractual) Rates() salary.Rates { return e.calc.Rates() }

func (e *Contractual) ComputeSalary(att attendance.Summarizer, month, year int, adj salary.Adjustments) salary.Details {
	return attendancePay(e.calc, att, e.ID(), month, year, adj)
}

func (e *Contractual) Record() Record {
	rates := e.Rates()
	return newRecord(e, &rates)
}

func (e *Contractual) Clone() Employee {
	return &Contractual{base: e.copy(), calc: e.calc}
}

// Intern receives a fixed stipend. Attendance has no effect on pay and no
// leave penalty is charged.
type Intern struct {
	base
}

func NewIntern(p Profile, stipend decimal.Decimal, monthsWorked int) (*Intern, error) {
	b, err := newBase(p, stipend, monthsWorked)
	if err != nil {
		return nil, err
	}
	return &Intern{base: b}, nil
}

func (e *Intern) Kind() Kind { return KindIntern }

func (e *Intern) ComputeSalary(_ attendance.Summarizer, _, _ int, adj salary.Adjustments) salary.Details {
	return salary.NewDetails(e.basePay, decimal.Zero, decimal.Zero, adj, decimal.Zero)
}

func (e *Intern) Record() Record { return newRecord(e, nil) }

func (e *Intern) Clone() Employee {
	return &Intern{base: e.copy()}
}

func attendancePay(calc salary.Calculator, att attendance.Summarizer, id string, month, year int, adj salary.Adjustments) salary.Details {
	c := calc.Compute(att.Totals(id, month, year))
	return salary.NewDetails(c.Basic, c.Overtime, c.Holiday, adj, c.LeavePenalty)
}

// New builds an employee of the given kind. Rates are ignored for interns.
func New(kind Kind, p Profile, basePay decimal.Decimal, monthsWorked int, rates salary.Rates) (Employee, error) {
	var (
		e   Employee
		err error
	)
	switch kind {
	case KindFulltime:
		var ft *Fulltime
		ft, err = NewFulltime(p, basePay, monthsWorked, rates)
		e = ft
	case KindContractual:
		var ct *Contractual
		ct, err = NewContractual(p, basePay, monthsWorked, rates)
		e = ct
	case KindIntern:
		var in *Intern
		in, err = NewIntern(p, basePay, monthsWorked)
		e = in
	default:
		return nil, ErrInvalidKind
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

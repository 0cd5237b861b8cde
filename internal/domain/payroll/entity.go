package payroll

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/welfare"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Period - one pay month
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (p Period) Validate() error {
	if !validator.IsValidPeriod(p.Month, p.Year) {
		return ErrInvalidPeriod
	}
	return nil
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// Previous returns the month before p.
func (p Period) Previous() Period {
	if p.Month == 1 {
		return Period{Month: 12, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

func (p Period) RegisterFilename() string {
	return fmt.Sprintf("payroll-register-%04d-%02d.csv", p.Year, p.Month)
}

// Payslip - salary breakdown with the inputs that produced it
type Payslip struct {
	EmployeeID   string            `json:"employee_id"`
	EmployeeName string            `json:"employee_name"`
	Kind         employee.Kind     `json:"kind"`
	Period       Period            `json:"period"`
	Attendance   attendance.Totals `json:"attendance"`
	Welfare      []welfare.Line    `json:"welfare"`
	Salary       salary.Details    `json:"salary"`
}

// Outcome - result of one employee inside a batch run.
// Exactly one of Details and Err is set.
type Outcome struct {
	EmployeeID string
	Kind       employee.Kind
	Name       string
	Details    *salary.Details
	Err        error
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

// BatchResult - outcomes of a batch run in registration order
type BatchResult struct {
	RunID     string
	Period    Period
	Outcomes  []Outcome
	Succeeded int
	Failed    int
}

// RegisterRow is one line of the payroll register export.
type RegisterRow struct {
	EmployeeID      string `csv:"employee_id"`
	Name            string `csv:"name"`
	Kind            string `csv:"kind"`
	BasicSalary     string `csv:"basic_salary"`
	OvertimeSalary  string `csv:"overtime_salary"`
	HolidaySalary   string `csv:"holiday_salary"`
	Bonuses         string `csv:"bonuses"`
	Allowances      string `csv:"allowances"`
	Deductions      string `csv:"deductions"`
	TotalSalary     string `csv:"total_salary"`
	Advance         string `csv:"advance"`
	NetAfterAdvance string `csv:"net_after_advance"`
	Error           string `csv:"error"`
}

// NewRegisterRow flattens an outcome. Failed outcomes keep their error text
// and leave the money columns empty.
func NewRegisterRow(o Outcome, advance decimal.Decimal) RegisterRow {
	row := RegisterRow{EmployeeID: o.EmployeeID, Name: o.Name, Kind: string(o.Kind)}
	if !o.OK() {
		row.Error = o.Err.Error()
		return row
	}
	d := o.Details
	row.BasicSalary = d.BasicSalary.String()
	row.OvertimeSalary = d.OvertimeSalary.String()
	row.HolidaySalary = d.HolidaySalary.String()
	row.Bonuses = d.Bonuses.String()
	row.Allowances = d.Allowances.String()
	row.Deductions = d.Deductions.String()
	row.TotalSalary = d.TotalSalary.String()
	row.Advance = advance.String()
	row.NetAfterAdvance = d.TotalSalary.Sub(advance).String()
	return row
}

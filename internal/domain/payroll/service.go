package payroll

import (
	"context"
	"io"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
)

// PayrollService computes salaries from the current registry, attendance and
// welfare state. Nothing is persisted.
type PayrollService interface {
	// RunPayroll computes one employee's salary for month/year
	RunPayroll(ctx context.Context, employeeID string, month, year int) (salary.Details, error)

	// Payslip is RunPayroll plus the attendance totals and welfare lines behind it
	Payslip(ctx context.Context, employeeID string, month, year int) (Payslip, error)

	// RunPayrollForAll computes every registered employee; failures are per employee
	RunPayrollForAll(ctx context.Context, month, year int) (BatchResult, error)

	// ExportRegister writes the batch as CSV with advances subtracted
	ExportRegister(ctx context.Context, req RegisterRequest, w io.Writer) error
}

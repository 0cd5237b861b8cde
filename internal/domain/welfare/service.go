package welfare

import (
	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
)

// WelfareService combines every registered provider for one employee.
type WelfareService interface {
	// ComputeTotals evaluates each provider for emp in month/year
	ComputeTotals(emp employee.Employee, att attendance.Summarizer, month, year int) Totals

	// Providers lists the details of registered providers in evaluation order
	Providers() []Details
}

package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/validator"
)

// badInput are domain errors caused by the request itself.
var badInput = []error{
	employee.ErrEmptyID,
	employee.ErrInvalidID,
	employee.ErrImmutableID,
	employee.ErrEmptyName,
	employee.ErrInvalidEmail,
	employee.ErrInvalidPhoneNumber,
	employee.ErrInvalidKind,
	employee.ErrNegativeBasePay,
	employee.ErrNegativeMonthsWorked,
	employee.ErrInvalidAmount,
	employee.ErrInvalidContractExpiry,
	attendance.ErrInvalidRecord,
	salary.ErrNegativeRate,
	payroll.ErrInvalidPeriod,
	payroll.ErrInvalidAdvance,
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee ID already registered")

	default:
		for _, target := range badInput {
			if errors.Is(err, target) {
				BadRequest(w, err.Error(), nil)
				return
			}
		}
		InternalServerError(w, "An unexpected error occurred")
	}
}

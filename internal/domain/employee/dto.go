package employee

import (
	"strings"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	// ID is optional; one is generated from the kind prefix when empty.
	ID             string           `json:"id,omitempty"`
	Kind           string           `json:"kind"`
	Name           string           `json:"name"`
	Address        string           `json:"address"`
	Phone          string           `json:"phone"`
	Email          string           `json:"email"`
	AdditionalInfo string           `json:"additional_info"`
	ContractExpiry string           `json:"contract_expiry,omitempty"`
	MonthsWorked   int              `json:"months_worked"`
	BasePay        decimal.Decimal  `json:"base_pay"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate,omitempty"`
	OvertimeRate   *decimal.Decimal `json:"overtime_rate,omitempty"`
	HolidayRate    *decimal.Decimal `json:"holiday_rate,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := ParseKind(r.Kind); err != nil {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: err.Error()})
	}
	if r.ID != "" && !ValidID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: ErrInvalidID.Error()})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: ErrInvalidEmail.Error()})
	}
	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: ErrInvalidPhoneNumber.Error()})
	}
	if _, err := ParseExpiry(r.ContractExpiry); err != nil {
		errs = append(errs, validator.ValidationError{Field: "contract_expiry", Message: err.Error()})
	}
	if r.MonthsWorked < 0 {
		errs = append(errs, validator.ValidationError{Field: "months_worked", Message: ErrNegativeMonthsWorked.Error()})
	}
	if r.BasePay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_pay", Message: ErrNegativeBasePay.Error()})
	}
	rates := []struct {
		field string
		value *decimal.Decimal
	}{
		{"hourly_rate", r.HourlyRate},
		{"overtime_rate", r.OvertimeRate},
		{"holiday_rate", r.HolidayRate},
	}
	for _, rate := range rates {
		if rate.value != nil && rate.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: rate.field, Message: salary.ErrNegativeRate.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Rates overlays any rates given in the request on defaults.
func (r *CreateEmployeeRequest) Rates(defaults salary.Rates) salary.Rates {
	rates := defaults
	if r.HourlyRate != nil {
		rates.Hourly = *r.HourlyRate
	}
	if r.OvertimeRate != nil {
		rates.Overtime = *r.OvertimeRate
	}
	if r.HolidayRate != nil {
		rates.Holiday = *r.HolidayRate
	}
	return rates
}

// UpdateEmployeeRequest is a partial update; nil fields are left unchanged.
type UpdateEmployeeRequest struct {
	Name           *string          `json:"name,omitempty"`
	Address        *string          `json:"address,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	Email          *string          `json:"email,omitempty"`
	AdditionalInfo *string          `json:"additional_info,omitempty"`
	ContractExpiry *string          `json:"contract_expiry,omitempty"`
	MonthsWorked   *int             `json:"months_worked,omitempty"`
	BasePay        *decimal.Decimal `json:"base_pay,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: ErrInvalidEmail.Error()})
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: ErrInvalidPhoneNumber.Error()})
	}
	if r.ContractExpiry != nil {
		if _, err := ParseExpiry(*r.ContractExpiry); err != nil {
			errs = append(errs, validator.ValidationError{Field: "contract_expiry", Message: err.Error()})
		}
	}
	if r.MonthsWorked != nil && *r.MonthsWorked < 0 {
		errs = append(errs, validator.ValidationError{Field: "months_worked", Message: ErrNegativeMonthsWorked.Error()})
	}
	if r.BasePay != nil && r.BasePay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_pay", Message: ErrNegativeBasePay.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply writes the request onto e. It stops at the first rejected field,
// so callers should apply to a clone.
func (r *UpdateEmployeeRequest) Apply(e Employee) error {
	p := e.Profile()
	if r.Name != nil {
		p.Name = strings.TrimSpace(*r.Name)
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.AdditionalInfo != nil {
		p.AdditionalInfo = *r.AdditionalInfo
	}
	if r.ContractExpiry != nil {
		expiry, err := ParseExpiry(*r.ContractExpiry)
		if err != nil {
			return err
		}
		p.ContractExpiry = expiry
	}
	if err := e.SetProfile(p); err != nil {
		return err
	}
	if r.MonthsWorked != nil {
		if err := e.SetMonthsWorked(*r.MonthsWorked); err != nil {
			return err
		}
	}
	if r.BasePay != nil {
		if err := e.SetBasePay(*r.BasePay); err != nil {
			return err
		}
	}
	return nil
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	Kind           Kind            `json:"kind"`
	LogicalType    string          `json:"logical_type"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	AdditionalInfo string          `json:"additional_info,omitempty"`
	ContractExpiry string          `json:"contract_expiry"`
	MonthsWorked   int             `json:"months_worked"`
	BasePay        decimal.Decimal `json:"base_pay"`
	Rates          *salary.Rates   `json:"rates,omitempty"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	p := e.Profile()
	resp := EmployeeResponse{
		ID:             p.ID,
		Kind:           e.Kind(),
		LogicalType:    e.Kind().LogicalType(),
		Name:           p.Name,
		Address:        p.Address,
		Phone:          p.Phone,
		Email:          p.Email,
		AdditionalInfo: p.AdditionalInfo,
		ContractExpiry: FormatExpiry(p.ContractExpiry),
		MonthsWorked:   e.MonthsWorked(),
		BasePay:        e.BasePay(),
	}
	if rated, ok := e.(Rated); ok {
		rates := rated.Rates()
		resp.Rates = &rates
	}
	return resp
}

// RowError describes a skipped import row.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors,omitempty"`
}

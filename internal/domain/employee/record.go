package employee

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"
	noExpiry   = "N/A"
)

// Record is the flat, stable-order form used for CSV files and storage.
type Record struct {
	ID             string `csv:"id" json:"id"`
	Kind           string `csv:"kind" json:"kind"`
	Name           string `csv:"name" json:"name"`
	Address        string `csv:"address" json:"address"`
	Phone          string `csv:"phone" json:"phone"`
	Email          string `csv:"email" json:"email"`
	AdditionalInfo string `csv:"additional_info" json:"additional_info"`
	ContractExpiry string `csv:"contract_expiry" json:"contract_expiry"`
	MonthsWorked   int    `csv:"months_worked" json:"months_worked"`
	BasePay        string `csv:"base_pay" json:"base_pay"`
	HourlyRate     string `csv:"hourly_rate" json:"hourly_rate"`
	OvertimeRate   string `csv:"overtime_rate" json:"overtime_rate"`
	HolidayRate    string `csv:"holiday_rate" json:"holiday_rate"`
}

// newRecord flattens e. Rate columns are written whenever rates is non-nil,
// zero rates included, and left empty for stipend-paid kinds.
func newRecord(e Employee, rates *salary.Rates) Record {
	p := e.Profile()
	rec := Record{
		ID:             p.ID,
		Kind:           string(e.Kind()),
		Name:           p.Name,
		Address:        p.Address,
		Phone:          p.Phone,
		Email:          p.Email,
		AdditionalInfo: p.AdditionalInfo,
		ContractExpiry: FormatExpiry(p.ContractExpiry),
		MonthsWorked:   e.MonthsWorked(),
		BasePay:        e.BasePay().String(),
	}
	if rates != nil {
		rec.HourlyRate = rates.Hourly.String()
		rec.OvertimeRate = rates.Overtime.String()
		rec.HolidayRate = rates.Holiday.String()
	}
	return rec
}

// FromRecord rebuilds an employee. Empty rate columns fall back to defaults.
func FromRecord(rec Record, defaults salary.Rates) (Employee, error) {
	kind, err := ParseKind(rec.Kind)
	if err != nil {
		return nil, fmt.Errorf("employee %q: %w", rec.ID, err)
	}

	expiry, err := ParseExpiry(rec.ContractExpiry)
	if err != nil {
		return nil, fmt.Errorf("employee %q: %w", rec.ID, err)
	}

	basePay, err := parseAmount(rec.BasePay, decimal.Zero)
	if err != nil {
		return nil, fmt.Errorf("employee %q: base pay: %w", rec.ID, err)
	}

	rates := defaults
	if rates.Hourly, err = parseAmount(rec.HourlyRate, defaults.Hourly); err != nil {
		return nil, fmt.Errorf("employee %q: hourly rate: %w", rec.ID, err)
	}
	if rates.Overtime, err = parseAmount(rec.OvertimeRate, defaults.Overtime); err != nil {
		return nil, fmt.Errorf("employee %q: overtime rate: %w", rec.ID, err)
	}
	if rates.Holiday, err = parseAmount(rec.HolidayRate, defaults.Holiday); err != nil {
		return nil, fmt.Errorf("employee %q: holiday rate: %w", rec.ID, err)
	}

	profile := Profile{
		ID:             rec.ID,
		Name:           rec.Name,
		Address:        strings.TrimSpace(rec.Address),
		Phone:          strings.TrimSpace(rec.Phone),
		Email:          strings.TrimSpace(rec.Email),
		AdditionalInfo: rec.AdditionalInfo,
		ContractExpiry: expiry,
	}
	return New(kind, profile, basePay, rec.MonthsWorked, rates)
}

func parseAmount(s string, fallback decimal.Decimal) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParseExpiry reads a YYYY-MM-DD contract expiry. Empty, "N/A" and "0-0-0"
// mean no expiry.
func ParseExpiry(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, noExpiry) || s == "0-0-0" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, ErrInvalidContractExpiry
	}
	return &t, nil
}

func FormatExpiry(t *time.Time) string {
	if t == nil {
		return noExpiry
	}
	return t.Format(dateLayout)
}

package payroll

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PERIOD DTOs ==========

type PeriodQuery struct {
	Month string
	Year  string
}

// Parse validates the raw query values and returns the period.
func (q PeriodQuery) Parse() (Period, error) {
	var errs validator.ValidationErrors

	month, err := strconv.Atoi(strings.TrimSpace(q.Month))
	if err != nil || month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	year, err := strconv.Atoi(strings.TrimSpace(q.Year))
	if err != nil || year <= 0 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a positive number"})
	}

	if len(errs) > 0 {
		return Period{}, errs
	}
	return Period{Month: month, Year: year}, nil
}

// ========== REGISTER DTOs ==========

type RegisterRequest struct {
	Period   Period
	Advances map[string]decimal.Decimal
}

// ParseAdvances reads "employee_id:amount" pairs. Repeated IDs are summed.
func ParseAdvances(values []string) (map[string]decimal.Decimal, error) {
	advances := make(map[string]decimal.Decimal, len(values))
	for _, v := range values {
		for _, pair := range strings.Split(v, ",") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			id, amount, ok := strings.Cut(pair, ":")
			id = strings.TrimSpace(id)
			if !ok || id == "" {
				return nil, ErrInvalidAdvance
			}
			d, err := decimal.NewFromString(strings.TrimSpace(amount))
			if err != nil || d.IsNegative() {
				return nil, ErrInvalidAdvance
			}
			advances[id] = advances[id].Add(d)
		}
	}
	return advances, nil
}

// ========== RESPONSE DTOs ==========

type OutcomeResponse struct {
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	Kind       string          `json:"kind"`
	Salary     *salary.Details `json:"salary,omitempty"`
	Error      string          `json:"error,omitempty"`
}

type BatchResponse struct {
	RunID     string            `json:"run_id"`
	Period    Period            `json:"period"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Results   []OutcomeResponse `json:"results"`
}

func NewBatchResponse(b BatchResult) BatchResponse {
	resp := BatchResponse{
		RunID:     b.RunID,
		Period:    b.Period,
		Succeeded: b.Succeeded,
		Failed:    b.Failed,
		Results:   make([]OutcomeResponse, 0, len(b.Outcomes)),
	}
	for _, o := range b.Outcomes {
		item := OutcomeResponse{EmployeeID: o.EmployeeID, Name: o.Name, Kind: string(o.Kind)}
		if o.OK() {
			d := *o.Details
			item.Salary = &d
		} else {
			item.Error = o.Err.Error()
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}

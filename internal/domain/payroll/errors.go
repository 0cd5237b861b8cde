package payroll

import "errors"

var (
	ErrInvalidPeriod  = errors.New("invalid payroll period: month must be 1-12 and year positive")
	ErrInvalidAdvance = errors.New("advance must be employee_id:amount with a non-negative amount")
)

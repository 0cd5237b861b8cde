package welfare

import "errors"

var (
	ErrNegativeRate      = errors.New("welfare rate must not be negative")
	ErrNegativeAmount    = errors.New("welfare amount must not be negative")
	ErrNegativeMinMonths = errors.New("minimum months worked must not be negative")
	ErrInvalidRoute      = errors.New("route entries must be region=km with a non-negative distance")
)

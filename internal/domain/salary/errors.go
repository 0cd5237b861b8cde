package salary

import "errors"

var (
	ErrNegativeRate = errors.New("salary rates must not be negative")
)

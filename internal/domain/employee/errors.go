package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeExists        = errors.New("employee id already registered")
	ErrEmptyID               = errors.New("employee id is required")
	ErrInvalidID             = errors.New("employee id may only contain letters, digits, '-' and '_' (max 32) and cannot be export or import")
	ErrImmutableID           = errors.New("employee id cannot be changed")
	ErrEmptyName             = errors.New("employee name is required")
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrInvalidPhoneNumber    = errors.New("phone number must be 10 digits starting with 0 or +84 followed by 9 digits")
	ErrInvalidKind           = errors.New("kind must be fulltime, contractual or intern")
	ErrNegativeBasePay       = errors.New("base pay must not be negative")
	ErrNegativeMonthsWorked  = errors.New("months worked must not be negative")
	ErrInvalidAmount         = errors.New("invalid decimal amount")
	ErrInvalidContractExpiry = errors.New("contract expiry must be YYYY-MM-DD or N/A")
)

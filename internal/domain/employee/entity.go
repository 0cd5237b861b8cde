package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Kind enum
type Kind string

const (
	KindFulltime    Kind = "fulltime"
	KindContractual Kind = "contractual"
	KindIntern      Kind = "intern"
)

// Kinds lists every employment class in display order.
var Kinds = []Kind{KindFulltime, KindContractual, KindIntern}

// ParseKind accepts a kind name, its ID prefix, or its logical type label.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if s == string(k) || s == strings.ToLower(k.Prefix()) || s == strings.ToLower(k.LogicalType()) {
			return k, nil
		}
	}
	switch s {
	case "full-time", "full_time":
		return KindFulltime, nil
	case "contract", "contractor":
		return KindContractual, nil
	case "internship":
		return KindIntern, nil
	}
	return "", ErrInvalidKind
}

// Prefix is prepended to generated employee IDs.
func (k Kind) Prefix() string {
	switch k {
	case KindFulltime:
		return "FT"
	case KindContractual:
		return "CT"
	case KindIntern:
		return "IT"
	}
	return ""
}

func (k Kind) LogicalType() string {
	switch k {
	case KindFulltime:
		return "Full-time Employee"
	case KindContractual:
		return "Contractual Employee"
	case KindIntern:
		return "Intern"
	}
	return ""
}

// Profile - identity and contact data shared by every employee kind
type Profile struct {
	ID             string
	Name           string
	Address        string
	Phone          string
	Email          string
	AdditionalInfo string
	ContractExpiry *time.Time
}

// reservedIDs collide with static route segments under /employees and /payroll.
var reservedIDs = []string{"export", "import"}

// ValidID reports whether id is well formed and not a reserved route word.
func ValidID(id string) bool {
	return validator.IsValidEmployeeID(id) && !validator.IsInSlice(strings.ToLower(id), reservedIDs)
}

func (p Profile) Validate() error {
	if validator.IsEmpty(p.ID) {
		return ErrEmptyID
	}
	if !ValidID(p.ID) {
		return ErrInvalidID
	}
	if validator.IsEmpty(p.Name) {
		return ErrEmptyName
	}
	if p.Email != "" && !validator.IsValidEmail(p.Email) {
		return ErrInvalidEmail
	}
	if p.Phone != "" && !validator.IsValidPhoneNumber(p.Phone) {
		return ErrInvalidPhoneNumber
	}
	return nil
}

func (p Profile) clone() Profile {
	if p.ContractExpiry != nil {
		expiry := *p.ContractExpiry
		p.ContractExpiry = &expiry
	}
	return p
}

// Employee is the capability set every employment class provides.
// Implementations are not safe for concurrent mutation; the registry
// hands out clones.
type Employee interface {
	ID() string
	Kind() Kind
	Profile() Profile
	// SetProfile replaces contact data. The ID cannot change.
	SetProfile(p Profile) error
	BasePay() decimal.Decimal
	SetBasePay(amount decimal.Decimal) error
	MonthsWorked() int
	SetMonthsWorked(months int) error
	// ComputeSalary combines the employee's own pay policy for month/year
	// with welfare adjustments.
	ComputeSalary(att attendance.Summarizer, month, year int, adj salary.Adjustments) salary.Details
	Record() Record
	Clone() Employee
}

// Rated is implemented by kinds whose pay is derived from attendance.
type Rated interface {
	Rates() salary.Rates
}

// Directory is the read side of the employee registry.
type Directory interface {
	Get(id string) (Employee, error)
	List() []Employee
}

// base holds the state common to all kinds.
type base struct {
	profile      Profile
	basePay      decimal.Decimal
	monthsWorked int
}

func newBase(p Profile, basePay decimal.Decimal, monthsWorked int) (base, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return base{}, err
	}
	if basePay.IsNegative() {
		return base{}, ErrNegativeBasePay
	}
	if monthsWorked < 0 {
		return base{}, ErrNegativeMonthsWorked
	}
	return base{profile: p.clone(), basePay: basePay, monthsWorked: monthsWorked}, nil
}

func (b *base) ID() string { return b.profile.ID }

func (b *base) Profile() Profile { return b.profile.clone() }

func (b *base) SetProfile(p Profile) error {
	if p.ID != b.profile.ID {
		return ErrImmutableID
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return err
	}
	b.profile = p.clone()
	return nil
}

func (b *base) BasePay() decimal.Decimal { return b.basePay }

func (b *base) SetBasePay(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeBasePay
	}
	b.basePay = amount
	return nil
}

func (b *base) MonthsWorked() int { return b.monthsWorked }

func (b *base) SetMonthsWorked(months int) error {
	if months < 0 {
		return ErrNegativeMonthsWorked
	}
	b.monthsWorked = months
	return nil
}

func (b *base) copy() base {
	return base{profile: b.profile.clone(), basePay: b.basePay, monthsWorked: b.monthsWorked}
}

package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidClock accepts HH:MM:SS or HH:MM wall-clock values.
func IsValidClock(clock string) bool {
	if _, err := time.Parse("15:04:05", clock); err == nil {
		return true
	}
	_, err := time.Parse("15:04", clock)
	return err == nil
}

// IsValidPeriod reports whether month/year name a real pay period.
func IsValidPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year > 0
}

// Phone number validation: 10 digits starting with 0, or +84 followed by 9 digits
func IsValidPhoneNumber(phone string) bool {
	// Remove spaces and dashes
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	if strings.HasPrefix(phone, "+84") {
		rest := strings.TrimPrefix(phone, "+84")
		return len(rest) == 9 && IsNumeric(rest)
	}

	return len(phone) == 10 && strings.HasPrefix(phone, "0") && IsNumeric(phone)
}

var employeeIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

func IsValidEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

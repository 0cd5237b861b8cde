package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/pkg/validator"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CreateRecordRequest struct {
	EmployeeID string `json:"employee_id"`
	WorkDate   string `json:"work_date"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	DayType    string `json:"day_type"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "work_date must be YYYY-MM-DD"})
	}
	if !DayType(r.DayType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "day_type", Message: "day_type must be one of normal, overtime, holiday, leave, leave_unpaid"})
	}
	if r.CheckIn != "" && !validator.IsValidClock(r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be HH:MM:SS"})
	}
	if r.CheckOut != "" && !validator.IsValidClock(r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be HH:MM:SS"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToRecord converts a validated request into a Record.
func (r *CreateRecordRequest) ToRecord() (Record, error) {
	row := ImportRow{
		EmployeeID:   r.EmployeeID,
		WorkDate:     r.WorkDate,
		CheckInTime:  r.CheckIn,
		CheckOutTime: r.CheckOut,
		DayType:      r.DayType,
	}
	return row.ToRecord()
}

// ImportRow is one line of the attendance CSV:
// EmployeeID,WorkDate,CheckInTime,CheckOutTime,DayType
type ImportRow struct {
	EmployeeID   string `csv:"EmployeeID"`
	WorkDate     string `csv:"WorkDate"`
	CheckInTime  string `csv:"CheckInTime"`
	CheckOutTime string `csv:"CheckOutTime"`
	DayType      string `csv:"DayType"`
}

// ToRecord parses the row. Every failure wraps ErrInvalidRecord.
func (row ImportRow) ToRecord() (Record, error) {
	employeeID := strings.TrimSpace(row.EmployeeID)
	if employeeID == "" {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyEmployee)
	}

	workDate, err := time.Parse(dateLayout, strings.TrimSpace(row.WorkDate))
	if err != nil {
		return Record{}, fmt.Errorf("%w: work date %q", ErrInvalidRecord, row.WorkDate)
	}

	dayType := DayType(strings.ToLower(strings.TrimSpace(row.DayType)))
	if !dayType.Valid() {
		return Record{}, fmt.Errorf("%w: %w %q", ErrInvalidRecord, ErrUnknownDayType, row.DayType)
	}

	checkIn, err := parseClock(workDate, row.CheckInTime)
	if err != nil {
		return Record{}, fmt.Errorf("%w: check-in %q", ErrInvalidRecord, row.CheckInTime)
	}
	checkOut, err := parseClock(workDate, row.CheckOutTime)
	if err != nil {
		return Record{}, fmt.Errorf("%w: check-out %q", ErrInvalidRecord, row.CheckOutTime)
	}

	return Record{
		EmployeeID: employeeID,
		WorkDate:   workDate,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		DayType:    dayType,
	}, nil
}

// parseClock places an HH:MM:SS (or HH:MM) clock value on date. An empty value
// maps to midnight so day-counted records may omit times.
func parseClock(date time.Time, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return date, nil
	}
	clock, err := time.Parse(clockLayout, value)
	if err != nil {
		clock, err = time.Parse("15:04", value)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, date.Location()), nil
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

type RecordResponse struct {
	EmployeeID string `json:"employee_id"`
	WorkDate   string `json:"work_date"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	DayType    string `json:"day_type"`
	IsHoliday  bool   `json:"is_holiday"`
}

// NewRecordResponse maps a Record for output.
func NewRecordResponse(r Record, isHoliday bool) RecordResponse {
	return RecordResponse{
		EmployeeID: r.EmployeeID,
		WorkDate:   r.WorkDate.Format(dateLayout),
		CheckIn:    r.CheckIn.Format(clockLayout),
		CheckOut:   r.CheckOut.Format(clockLayout),
		DayType:    string(r.DayType),
		IsHoliday:  isHoliday,
	}
}

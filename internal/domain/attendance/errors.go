package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidRecord  = errors.New("invalid attendance record")
	ErrEmptyEmployee  = errors.New("attendance record has no employee id")
	ErrUnknownDayType = errors.New("unknown attendance day type")
	ErrInvalidHoliday = errors.New("holiday must be in MM-DD format")
)

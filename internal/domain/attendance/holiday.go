package attendance

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultHolidays are the fixed public holidays (MM-DD), independent of year.
var DefaultHolidays = []string{"01-01", "04-30", "05-01", "09-02"}

// HolidayCalendar is a year-independent set of month-day holidays.
type HolidayCalendar struct {
	days map[string]struct{}
}

// NewHolidayCalendar builds a calendar from MM-DD strings.
func NewHolidayCalendar(days []string) (HolidayCalendar, error) {
	cal := HolidayCalendar{days: make(map[string]struct{}, len(days))}
	for _, d := range days {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, err := time.Parse("01-02", d); err != nil {
			return HolidayCalendar{}, fmt.Errorf("%w: %q", ErrInvalidHoliday, d)
		}
		cal.days[d] = struct{}{}
	}
	return cal, nil
}

// IsHoliday compares only the month and day of date.
func (c HolidayCalendar) IsHoliday(date time.Time) bool {
	_, ok := c.days[date.Format("01-02")]
	return ok
}

// Days returns the calendar entries in sorted order.
func (c HolidayCalendar) Days() []string {
	out := make([]string, 0, len(c.days))
	for d := range c.days {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

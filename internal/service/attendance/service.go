package attendance

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/gocarina/gocsv"
)

// Aggregator keeps every attendance record in memory and answers period
// totals from them. A single RWMutex guards the record slice.
type Aggregator struct {
	mu       sync.RWMutex
	records  []attendance.Record
	holidays attendance.HolidayCalendar
	repo     attendance.AttendanceRepository
	logger   *slog.Logger
}

// NewAttendanceService builds an aggregator. repo may be nil, in which case
// records live in memory only.
func NewAttendanceService(
	holidays attendance.HolidayCalendar,
	repo attendance.AttendanceRepository,
	logger *slog.Logger,
) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		holidays: holidays,
		repo:     repo,
		logger:   logger,
	}
}

var (
	_ attendance.AttendanceService = (*Aggregator)(nil)
	_ attendance.Snapshotter       = (*Aggregator)(nil)
)

// AddRecord implements attendance.AttendanceService.
func (a *Aggregator) AddRecord(ctx context.Context, r attendance.Record) error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	if err := r.Validate(); err != nil {
		return err
	}
	if a.repo != nil {
		if err := a.repo.Create(ctx, r); err != nil {
			return fmt.Errorf("failed to store attendance record: %w", err)
		}
	}

	a.mu.Lock()
	a.records = append(a.records, r)
	a.mu.Unlock()
	return nil
}

// Load implements attendance.AttendanceService.
func (a *Aggregator) Load(records []attendance.Record) int {
	valid := make([]attendance.Record, 0, len(records))
	for _, r := range records {
		r.EmployeeID = strings.TrimSpace(r.EmployeeID)
		if err := r.Validate(); err != nil {
			a.logger.Warn("Skipping invalid attendance record", "employee_id", r.EmployeeID, "error", err)
			continue
		}
		valid = append(valid, r)
	}

	a.mu.Lock()
	a.records = append(a.records, valid...)
	a.mu.Unlock()
	return len(valid)
}

// Restore implements attendance.AttendanceService.
func (a *Aggregator) Restore(ctx context.Context) (int, error) {
	if a.repo == nil {
		return 0, nil
	}
	records, err := a.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	n := a.Load(records)
	a.logger.Info("Restored attendance records", "count", n)
	return n, nil
}

// Import implements attendance.AttendanceService. The input must start with
// a header row; rows that fail to parse are skipped and reported by line.
func (a *Aggregator) Import(ctx context.Context, r io.Reader) (attendance.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []attendance.ImportRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return attendance.ImportResult{}, fmt.Errorf("failed to read attendance csv: %w", err)
	}

	result := attendance.ImportResult{}
	records := make([]attendance.Record, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // header is line 1
		rec, err := row.ToRecord()
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, attendance.RowError{Line: line, Reason: err.Error()})
			a.logger.Warn("Skipping attendance row", "line", line, "error", err)
			continue
		}
		records = append(records, rec)
	}

	if a.repo != nil && len(records) > 0 {
		if err := a.repo.CreateBatch(ctx, records); err != nil {
			return attendance.ImportResult{}, fmt.Errorf("failed to store imported attendance: %w", err)
		}
	}

	a.mu.Lock()
	a.records = append(a.records, records...)
	a.mu.Unlock()

	result.Imported = len(records)
	a.logger.Info("Imported attendance", "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

// Records implements attendance.AttendanceService.
func (a *Aggregator) Records() []attendance.Record {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]attendance.Record, len(a.records))
	copy(out, a.records)
	return out
}

// IsHoliday implements attendance.AttendanceService.
func (a *Aggregator) IsHoliday(date time.Time) bool {
	return a.holidays.IsHoliday(date)
}

// Totals implements attendance.Summarizer. An unknown employee yields zero totals.
func (a *Aggregator) Totals(employeeID string, month, year int) attendance.Totals {
	return a.Snapshot(employeeID, month, year).Totals(employeeID, month, year)
}

// CountDayTypes implements attendance.Summarizer.
func (a *Aggregator) CountDayTypes(employeeID string, month, year int) map[attendance.DayType]int {
	return a.Snapshot(employeeID, month, year).CountDayTypes(employeeID, month, year)
}

// Snapshot implements attendance.Snapshotter. Totals and counts come from the
// same read, so a concurrent AddRecord lands in both or neither.
func (a *Aggregator) Snapshot(employeeID string, month, year int) attendance.Snapshot {
	totals := attendance.Totals{EmployeeID: employeeID}
	counts := make(map[attendance.DayType]int)

	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, r := range a.records {
		if r.EmployeeID == employeeID && r.InPeriod(month, year) {
			totals.Add(r)
			counts[r.DayType]++
		}
	}
	return attendance.NewSnapshot(totals, counts, month, year)
}

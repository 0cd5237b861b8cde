package attendance

import (
	"context"
	"io"
	"time"
)

// AttendanceService owns the attendance records of the running engine.
type AttendanceService interface {
	Summarizer

	// AddRecord validates and appends one record. Duplicates are kept.
	AddRecord(ctx context.Context, r Record) error

	// Load bulk-adds records already held in memory, skipping invalid ones.
	Load(records []Record) int

	// Restore reloads persisted records, if a repository is configured.
	Restore(ctx context.Context) (int, error)

	// Import reads CSV rows, skipping and reporting malformed ones.
	Import(ctx context.Context, r io.Reader) (ImportResult, error)

	// Records returns a copy of every record in insertion order.
	Records() []Record

	// IsHoliday checks month and day against the holiday calendar.
	IsHoliday(date time.Time) bool
}

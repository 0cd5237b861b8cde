package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const insertAttendanceQuery = `
	INSERT INTO attendance_records (employee_id, work_date, check_in, check_out, day_type)
	VALUES ($1, $2, $3, $4, $5)
`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, r attendance.Record) error {
	q := a.db.Querier(ctx)

	if _, err := q.Exec(ctx, insertAttendanceQuery, r.EmployeeID, r.WorkDate, r.CheckIn, r.CheckOut, string(r.DayType)); err != nil {
		return fmt.Errorf("failed to create attendance record: %w", err)
	}
	return nil
}

// CreateBatch implements attendance.AttendanceRepository. All records are
// written in one transaction or none are.
func (a *attendanceRepository) CreateBatch(ctx context.Context, records []attendance.Record) error {
	if len(records) == 0 {
		return nil
	}

	return a.db.WithTransaction(ctx, func(ctx context.Context) error {
		batch := &pgx.Batch{}
		for _, r := range records {
			batch.Queue(insertAttendanceQuery, r.EmployeeID, r.WorkDate, r.CheckIn, r.CheckOut, string(r.DayType))
		}

		results := a.db.Querier(ctx).SendBatch(ctx, batch)
		for i := range records {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to insert attendance record %d: %w", i, err)
			}
		}
		return results.Close()
	})
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	q := a.db.Querier(ctx)

	rows, err := q.Query(ctx, `
		SELECT employee_id, work_date, check_in, check_out, day_type
		FROM attendance_records
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var (
			r       attendance.Record
			dayType string
		)
		if err := rows.Scan(&r.EmployeeID, &r.WorkDate, &r.CheckIn, &r.CheckOut, &dayType); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		r.DayType = attendance.DayType(dayType)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Save implements employee.EmployeeRepository. An existing row keeps its
// sequence number so registration order survives updates.
func (e *employeeRepositoryImpl) Save(ctx context.Context, rec employee.Record) error {
	q := e.db.Querier(ctx)

	expiry, err := employee.ParseExpiry(rec.ContractExpiry)
	if err != nil {
		return fmt.Errorf("save employee %s: %w", rec.ID, err)
	}

	query := `
		INSERT INTO employees (
			id, kind, name, address, phone, email, additional_info, contract_expiry,
			months_worked, base_pay, hourly_rate, overtime_rate, holiday_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::numeric, $11::numeric, $12::numeric, $13::numeric)
		ON CONFLICT (id) DO UPDATE SET
			kind = EXCLUDED.kind,
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			additional_info = EXCLUDED.additional_info,
			contract_expiry = EXCLUDED.contract_expiry,
			months_worked = EXCLUDED.months_worked,
			base_pay = EXCLUDED.base_pay,
			hourly_rate = EXCLUDED.hourly_rate,
			overtime_rate = EXCLUDED.overtime_rate,
			holiday_rate = EXCLUDED.holiday_rate,
			updated_at = NOW()
	`

	_, err = q.Exec(ctx, query,
		rec.ID, rec.Kind, rec.Name, rec.Address, rec.Phone, rec.Email, rec.AdditionalInfo, expiry,
		rec.MonthsWorked, orZero(rec.BasePay), nullable(rec.HourlyRate), nullable(rec.OvertimeRate), nullable(rec.HolidayRate),
	)
	if err != nil {
		return fmt.Errorf("failed to save employee %s: %w", rec.ID, err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := e.db.Querier(ctx)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Record, error) {
	q := e.db.Querier(ctx)

	query := `
		SELECT id, kind, name, address, phone, email, additional_info, contract_expiry,
			months_worked, base_pay::text, hourly_rate::text, overtime_rate::text, holiday_rate::text
		FROM employees
		ORDER BY seq
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var records []employee.Record
	for rows.Next() {
		var rec employee.Record
		var expiry *time.Time
		var hourly, overtime, holidayRate *string
		if err := rows.Scan(
			&rec.ID, &rec.Kind, &rec.Name, &rec.Address, &rec.Phone, &rec.Email, &rec.AdditionalInfo, &expiry,
			&rec.MonthsWorked, &rec.BasePay, &hourly, &overtime, &holidayRate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		rec.ContractExpiry = employee.FormatExpiry(expiry)
		rec.HourlyRate = deref(hourly)
		rec.OvertimeRate = deref(overtime)
		rec.HolidayRate = deref(holidayRate)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return records, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

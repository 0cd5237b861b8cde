package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-engine/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_SaveListDelete(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	ft := employee.Record{
		ID: "FT001", Kind: "fulltime", Name: "Nguyen Van A", Address: "District 1, HCMC",
		ContractExpiry: "2025-12-31", MonthsWorked: 12, BasePay: "15000000",
		HourlyRate: "50000", OvertimeRate: "75000", HolidayRate: "100000",
	}
	in := employee.Record{ID: "IT001", Kind: "intern", Name: "Tran Thi B", ContractExpiry: "N/A", BasePay: "3000000"}

	// Act
	require.NoError(t, repo.Save(ctx, ft))
	require.NoError(t, repo.Save(ctx, in))
	ft.Name = "Nguyen Van An"
	require.NoError(t, repo.Save(ctx, ft))

	records, err := repo.List(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "FT001", records[0].ID)
	assert.Equal(t, "Nguyen Van An", records[0].Name)
	assert.Equal(t, "2025-12-31", records[0].ContractExpiry)
	assert.Equal(t, "50000", records[0].HourlyRate)
	assert.Equal(t, "IT001", records[1].ID)
	assert.Equal(t, "N/A", records[1].ContractExpiry)
	assert.Empty(t, records[1].HourlyRate)

	require.NoError(t, repo.Delete(ctx, "IT001"))
	assert.ErrorIs(t, repo.Delete(ctx, "IT001"), employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ZeroRatesStayZero(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	e, err := employee.New(employee.KindFulltime, employee.Profile{ID: "Z1", Name: "Zero"}, decimal.NewFromInt(1), 1, salary.Rates{})
	require.NoError(t, err)

	// Act
	require.NoError(t, repo.Save(ctx, e.Record()))
	records, err := repo.List(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "0", records[0].HourlyRate)
	assert.Equal(t, "0", records[0].OvertimeRate)
	assert.Equal(t, "0", records[0].HolidayRate)
}

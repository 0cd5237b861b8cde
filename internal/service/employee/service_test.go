package employee

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	order   []string
	records map[string]employee.Record
	failOn  string
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: make(map[string]employee.Record)}
}

func (m *memoryRepo) Save(_ context.Context, rec employee.Record) error {
	if rec.ID == m.failOn {
		return errors.New("disk full")
	}
	if _, ok := m.records[rec.ID]; !ok {
		m.order = append(m.order, rec.ID)
	}
	m.records[rec.ID] = rec
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.records[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *memoryRepo) List(context.Context) ([]employee.Record, error) {
	var out []employee.Record
	for _, id := range m.order {
		if rec, ok := m.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func defaultRates() salary.Rates {
	return salary.Rates{
		Hourly:   decimal.NewFromInt(50000),
		Overtime: decimal.NewFromInt(75000),
		Holiday:  decimal.NewFromInt(100000),
	}
}

func newTestService(repo employee.EmployeeRepository) (*EmployeeServiceImpl, *Registry) {
	registry := NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if repo == nil {
		return NewEmployeeService(registry, nil, defaultRates(), logger), registry
	}
	return NewEmployeeService(registry, repo, defaultRates(), logger), registry
}

func TestEmployeeService_CreateEmployee_GeneratesID(t *testing.T) {
	svc, registry := newTestService(nil)
	ctx := context.Background()

	// Act
	first, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{Kind: "fulltime", Name: "Nguyen Van A", BasePay: decimal.NewFromInt(15000000)})
	require.NoError(t, err)
	second, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{Kind: "intern", Name: "Le Van C", BasePay: decimal.NewFromInt(3000000)})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "FT001", first.ID)
	assert.Equal(t, "IT002", second.ID)
	assert.Equal(t, "Full-time Employee", first.LogicalType)
	require.NotNil(t, first.Rates)
	assert.True(t, first.Rates.Hourly.Equal(decimal.NewFromInt(50000)))
	assert.Nil(t, second.Rates)
	assert.Equal(t, 2, registry.Len())
}

func TestEmployeeService_CreateEmployee_DuplicateID(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()
	req := employee.CreateEmployeeRequest{ID: "E1", Kind: "fulltime", Name: "A"}
	_, err := svc.CreateEmployee(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, req)

	assert.ErrorIs(t, err, employee.ErrEmployeeExists)
}

func TestEmployeeService_CreateEmployee_ValidationError(t *testing.T) {
	svc, registry := newTestService(nil)

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{Kind: "boss", BasePay: decimal.NewFromInt(-1)})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "kind")
	assert.Contains(t, verrs.ToMap(), "name")
	assert.Contains(t, verrs.ToMap(), "base_pay")
	assert.Zero(t, registry.Len())
}

func TestEmployeeService_CreateEmployee_StoreFailureLeavesRegistryEmpty(t *testing.T) {
	repo := newMemoryRepo()
	repo.failOn = "E1"
	svc, registry := newTestService(repo)

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{ID: "E1", Kind: "fulltime", Name: "A"})

	assert.Error(t, err)
	assert.Zero(t, registry.Len())
}

func TestEmployeeService_UpdateEmployee(t *testing.T) {
	repo := newMemoryRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()
	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{ID: "E1", Kind: "fulltime", Name: "A", MonthsWorked: 5})
	require.NoError(t, err)
	months := 6
	address := "Quan 3, TP.HCM"

	// Act
	resp, err := svc.UpdateEmployee(ctx, "E1", employee.UpdateEmployeeRequest{MonthsWorked: &months, Address: &address})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 6, resp.MonthsWorked)
	assert.Equal(t, "Quan 3, TP.HCM", resp.Address)
	assert.Equal(t, 6, repo.records["E1"].MonthsWorked)
}

func TestEmployeeService_UpdateEmployee_NotFound(t *testing.T) {
	svc, _ := newTestService(nil)
	name := "B"

	_, err := svc.UpdateEmployee(context.Background(), "missing", employee.UpdateEmployeeRequest{Name: &name})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_UpdateEmployee_StoreFailureKeepsOldState(t *testing.T) {
	repo := newMemoryRepo()
	svc, registry := newTestService(repo)
	ctx := context.Background()
	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{ID: "E1", Kind: "intern", Name: "A", BasePay: decimal.NewFromInt(100)})
	require.NoError(t, err)
	repo.failOn = "E1"
	pay := decimal.NewFromInt(999)

	_, err = svc.UpdateEmployee(ctx, "E1", employee.UpdateEmployeeRequest{BasePay: &pay})

	assert.Error(t, err)
	e, err := registry.Get("E1")
	require.NoError(t, err)
	assert.True(t, e.BasePay().Equal(decimal.NewFromInt(100)))
}

func TestEmployeeService_DeleteEmployee(t *testing.T) {
	repo := newMemoryRepo()
	svc, registry := newTestService(repo)
	ctx := context.Background()
	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{ID: "E1", Kind: "intern", Name: "A"})
	require.NoError(t, err)

	// Act
	err = svc.DeleteEmployee(ctx, "E1")

	// Assert
	require.NoError(t, err)
	assert.Zero(t, registry.Len())
	assert.Empty(t, repo.records)
	assert.ErrorIs(t, svc.DeleteEmployee(ctx, "E1"), employee.ErrEmployeeNotFound)
}

func TestEmployeeService_ImportExport(t *testing.T) {
	svc, registry := newTestService(nil)
	ctx := context.Background()
	input := strings.Join([]string{
		"id,kind,name,address,phone,email,additional_info,contract_expiry,months_worked,base_pay,hourly_rate,overtime_rate,holiday_rate",
		"FT001,fulltime,Nguyen Van A,\"Quan 1, TP.HCM\",0901234567,a@example.com,,N/A,24,15000000,,,",
		"CT001,contractual,Tran Thi B,Quan 7,,,,2025-06-30,4,20000000,60000,90000,120000",
		"IT001,intern,Le Van C,Quan 7,,,,2024-08-31,3,3000000,,,",
		"FT001,fulltime,Duplicate,,,,,N/A,1,1,,,",
		"XX001,boss,Nobody,,,,,N/A,1,1,,,",
		"FT002,fulltime,Bad Pay,,,,,N/A,1,abc,,,",
	}, "\n")

	// Act
	result, err := svc.Import(ctx, strings.NewReader(input))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 3, result.Skipped)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, 5, result.Errors[0].Line)
	assert.Equal(t, 3, registry.Len())

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,kind,name,address,phone,email,additional_info,contract_expiry,months_worked,base_pay,hourly_rate,overtime_rate,holiday_rate", lines[0])
	assert.Equal(t, "FT001,fulltime,Nguyen Van A,\"Quan 1, TP.HCM\",0901234567,a@example.com,,N/A,24,15000000,50000,75000,100000", lines[1])
	assert.Equal(t, "IT001,intern,Le Van C,Quan 7,,,,2024-08-31,3,3000000,,,", lines[3])
}

func TestEmployeeService_Restore(t *testing.T) {
	repo := newMemoryRepo()
	require.NoError(t, repo.Save(context.Background(), employee.Record{ID: "FT001", Kind: "fulltime", Name: "A", BasePay: "1"}))
	require.NoError(t, repo.Save(context.Background(), employee.Record{ID: "BAD", Kind: "boss", Name: "B"}))
	svc, registry := newTestService(repo)

	n, err := svc.Restore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, registry.Len())
}

func TestEmployeeService_ListEmployees_RegistrationOrder(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()
	for _, id := range []string{"C", "A", "B"} {
		_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{ID: id, Kind: "intern", Name: id})
		require.NoError(t, err)
	}

	list, err := svc.ListEmployees(ctx)

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "C", list[0].ID)
	assert.Equal(t, "A", list[1].ID)
	assert.Equal(t, "B", list[2].ID)
}

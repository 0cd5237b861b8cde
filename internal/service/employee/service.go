package employee

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/gocarina/gocsv"
)

type EmployeeServiceImpl struct {
	registry     *Registry
	employeeRepo employee.EmployeeRepository
	defaultRates salary.Rates
	logger       *slog.Logger

	// writeMu serialises mutations so the store and the registry stay in step.
	writeMu sync.Mutex
}

// NewEmployeeService wires the registry to an optional repository. With a nil
// repository employees live in memory only.
func NewEmployeeService(
	registry *Registry,
	employeeRepo employee.EmployeeRepository,
	defaultRates salary.Rates,
	logger *slog.Logger,
) *EmployeeServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmployeeServiceImpl{
		registry:     registry,
		employeeRepo: employeeRepo,
		defaultRates: defaultRates,
		logger:       logger,
	}
}

var _ employee.EmployeeService = (*EmployeeServiceImpl)(nil)

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	kind, _ := employee.ParseKind(req.Kind)
	expiry, _ := employee.ParseExpiry(req.ContractExpiry)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = s.registry.NextID(kind)
	}

	profile := employee.Profile{
		ID:             id,
		Name:           req.Name,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		AdditionalInfo: req.AdditionalInfo,
		ContractExpiry: expiry,
	}
	newEmployee, err := employee.New(kind, profile, req.BasePay, req.MonthsWorked, req.Rates(s.defaultRates))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if _, err := s.registry.Get(id); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeExists
	}

	if err := s.save(ctx, newEmployee); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.registry.Insert(newEmployee); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.logger.Info("Created employee", "employee_id", id, "kind", kind)
	return employee.NewEmployeeResponse(newEmployee), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.registry.Get(id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees := s.registry.List()
	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, employee.NewEmployeeResponse(e))
	}
	return resp, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// Get returns a clone; the registry is untouched until Put.
	e, err := s.registry.Get(id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Apply(e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.save(ctx, e); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.registry.Put(e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.logger.Info("Updated employee", "employee_id", id)
	return employee.NewEmployeeResponse(e), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.registry.Get(id); err != nil {
		return err
	}
	if s.employeeRepo != nil {
		if err := s.employeeRepo.Delete(ctx, id); err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
	}
	if err := s.registry.Remove(id); err != nil {
		return err
	}

	s.logger.Info("Deleted employee", "employee_id", id)
	return nil
}

// Import implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Import(ctx context.Context, r io.Reader) (employee.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []employee.Record
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		return employee.ImportResult{}, fmt.Errorf("failed to read employee csv: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	result := employee.ImportResult{}
	skip := func(line int, err error) {
		result.Skipped++
		result.Errors = append(result.Errors, employee.RowError{Line: line, Reason: err.Error()})
		s.logger.Warn("Skipping employee row", "line", line, "error", err)
	}

	for i, rec := range records {
		line := i + 2 // header is line 1
		e, err := employee.FromRecord(rec, s.defaultRates)
		if err != nil {
			skip(line, err)
			continue
		}
		if _, err := s.registry.Get(e.ID()); err == nil {
			skip(line, fmt.Errorf("employee %q: %w", e.ID(), employee.ErrEmployeeExists))
			continue
		}
		if err := s.save(ctx, e); err != nil {
			return result, err
		}
		if err := s.registry.Insert(e); err != nil {
			skip(line, err)
			continue
		}
		result.Imported++
	}

	s.logger.Info("Imported employees", "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

// Export implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Export(ctx context.Context, w io.Writer) error {
	employees := s.registry.List()
	records := make([]employee.Record, 0, len(employees))
	for _, e := range employees {
		records = append(records, e.Record())
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("failed to write employee csv: %w", err)
	}
	return nil
}

// Restore implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Restore(ctx context.Context) (int, error) {
	if s.employeeRepo == nil {
		return 0, nil
	}
	records, err := s.employeeRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list employees: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	restored := 0
	for _, rec := range records {
		e, err := employee.FromRecord(rec, s.defaultRates)
		if err != nil {
			s.logger.Warn("Skipping stored employee", "employee_id", rec.ID, "error", err)
			continue
		}
		if err := s.registry.Insert(e); err != nil {
			s.logger.Warn("Skipping stored employee", "employee_id", rec.ID, "error", err)
			continue
		}
		restored++
	}
	s.logger.Info("Restored employees", "count", restored)
	return restored, nil
}

func (s *EmployeeServiceImpl) save(ctx context.Context, e employee.Employee) error {
	if s.employeeRepo == nil {
		return nil
	}
	if err := s.employeeRepo.Save(ctx, e.Record()); err != nil {
		return fmt.Errorf("failed to save employee %s: %w", e.ID(), err)
	}
	return nil
}

package payroll

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/welfare"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds batch fan-out when no worker count is configured.
const DefaultWorkers = 4

// PayrollServiceImpl is a stateless coordinator over the employee directory,
// the attendance records and the welfare providers. It owns none of them.
type PayrollServiceImpl struct {
	employees  employee.Directory
	attendance attendance.Summarizer
	welfare    welfare.WelfareService
	workers    int
	logger     *slog.Logger
}

func NewPayrollService(
	employees employee.Directory,
	att attendance.Summarizer,
	welfareService welfare.WelfareService,
	workers int,
	logger *slog.Logger,
) *PayrollServiceImpl {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PayrollServiceImpl{
		employees:  employees,
		attendance: att,
		welfare:    welfareService,
		workers:    workers,
		logger:     logger,
	}
}

var _ payroll.PayrollService = (*PayrollServiceImpl)(nil)

// calculation holds everything one payroll computation produced.
type calculation struct {
	attendance attendance.Totals
	welfare    welfare.Totals
	details    salary.Details
}

// compute runs welfare first, then the employee's own pay policy. emp must be
// a snapshot nobody else mutates. Attendance is read once so welfare, salary
// and the reported totals all see the same records.
func (s *PayrollServiceImpl) compute(emp employee.Employee, period payroll.Period) (calc calculation, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("payroll for %s panicked: %v", emp.ID(), r)
		}
	}()

	att := attendance.SnapshotOf(s.attendance, emp.ID(), period.Month, period.Year)
	calc.welfare = s.welfare.ComputeTotals(emp, att, period.Month, period.Year)
	calc.details = emp.ComputeSalary(att, period.Month, period.Year, calc.welfare.Adjustments())
	calc.attendance = att.Totals(emp.ID(), period.Month, period.Year)
	return calc, nil
}

func (s *PayrollServiceImpl) lookup(ctx context.Context, employeeID string, month, year int) (employee.Employee, payroll.Period, error) {
	if err := ctx.Err(); err != nil {
		return nil, payroll.Period{}, err
	}
	period := payroll.Period{Month: month, Year: year}
	if err := period.Validate(); err != nil {
		return nil, payroll.Period{}, err
	}
	emp, err := s.employees.Get(employeeID)
	if err != nil {
		return nil, payroll.Period{}, err
	}
	return emp, period, nil
}

// RunPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, employeeID string, month, year int) (salary.Details, error) {
	emp, period, err := s.lookup(ctx, employeeID, month, year)
	if err != nil {
		return salary.Details{}, err
	}
	calc, err := s.compute(emp, period)
	if err != nil {
		return salary.Details{}, err
	}

	s.logger.Debug("Computed payroll", "employee_id", employeeID, "month", month, "year", year, "total", calc.details.TotalSalary)
	return calc.details, nil
}

// Payslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, employeeID string, month, year int) (payroll.Payslip, error) {
	emp, period, err := s.lookup(ctx, employeeID, month, year)
	if err != nil {
		return payroll.Payslip{}, err
	}
	calc, err := s.compute(emp, period)
	if err != nil {
		return payroll.Payslip{}, err
	}

	return payroll.Payslip{
		EmployeeID:   emp.ID(),
		EmployeeName: emp.Profile().Name,
		Kind:         emp.Kind(),
		Period:       period,
		Attendance:   calc.attendance,
		Welfare:      calc.welfare.Lines,
		Salary:       calc.details,
	}, nil
}

// RunPayrollForAll implements payroll.PayrollService. Each worker writes only
// its own slot, so outcomes keep registration order.
func (s *PayrollServiceImpl) RunPayrollForAll(ctx context.Context, month, year int) (payroll.BatchResult, error) {
	period := payroll.Period{Month: month, Year: year}
	if err := period.Validate(); err != nil {
		return payroll.BatchResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return payroll.BatchResult{}, err
	}

	runID := uuid.NewString()
	employees := s.employees.List()
	outcomes := make([]payroll.Outcome, len(employees))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			outcome := payroll.Outcome{EmployeeID: emp.ID(), Kind: emp.Kind(), Name: emp.Profile().Name}
			if err := gCtx.Err(); err != nil {
				outcome.Err = err
				outcomes[i] = outcome
				return nil
			}

			calc, err := s.compute(emp, period)
			if err != nil {
				outcome.Err = err
			} else {
				outcome.Details = &calc.details
			}
			outcomes[i] = outcome
			return nil
		})
	}
	_ = g.Wait()

	result := payroll.BatchResult{RunID: runID, Period: period, Outcomes: outcomes}
	for _, o := range outcomes {
		if o.OK() {
			result.Succeeded++
			continue
		}
		result.Failed++
		s.logger.Warn("Payroll failed for employee", "run_id", runID, "employee_id", o.EmployeeID, "error", o.Err)
	}

	s.logger.Info("Payroll batch finished",
		"run_id", runID,
		"month", month,
		"year", year,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
	)
	return result, nil
}

// ExportRegister implements payroll.PayrollService.
func (s *PayrollServiceImpl) ExportRegister(ctx context.Context, req payroll.RegisterRequest, w io.Writer) error {
	batch, err := s.RunPayrollForAll(ctx, req.Period.Month, req.Period.Year)
	if err != nil {
		return err
	}

	rows := make([]payroll.RegisterRow, 0, len(batch.Outcomes))
	seen := make(map[string]struct{}, len(batch.Outcomes))
	for _, o := range batch.Outcomes {
		seen[o.EmployeeID] = struct{}{}
		rows = append(rows, payroll.NewRegisterRow(o, req.Advances[o.EmployeeID]))
	}
	for id := range req.Advances {
		if _, ok := seen[id]; !ok {
			s.logger.Warn("Ignoring advance for unknown employee", "run_id", batch.RunID, "employee_id", id)
		}
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write payroll register: %w", err)
	}
	return nil
}

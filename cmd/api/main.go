package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/config"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/welfare"
	appHTTP "github.com/cmlabs-hris/payroll-engine/internal/handler/http"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/cron"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/logger"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/storage"
	"github.com/cmlabs-hris/payroll-engine/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/payroll-engine/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/payroll-engine/internal/service/employee"
	payrollService "github.com/cmlabs-hris/payroll-engine/internal/service/payroll"
	welfareService "github.com/cmlabs-hris/payroll-engine/internal/service/welfare"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App)
	if err := run(cfg, log); err != nil {
		log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Money is rendered as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	holidays, err := attendance.NewHolidayCalendar(cfg.Attendance.Holidays)
	if err != nil {
		return err
	}

	var (
		employeeRepo   employee.EmployeeRepository
		attendanceRepo attendance.AttendanceRepository
	)
	if cfg.Database.Enabled() {
		db, err := database.Connect(ctx, cfg.DatabaseURL())
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		employeeRepo = postgresql.NewEmployeeRepository(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
		log.Info("Using PostgreSQL store", "host", cfg.Database.Host, "database", cfg.Database.Name)
	} else {
		log.Info("No database configured, running in memory")
	}

	registry := employeeService.NewRegistry()
	employeeSvc := employeeService.NewEmployeeService(registry, employeeRepo, cfg.Payroll.Rates, log)
	attendanceSvc := attendanceService.NewAttendanceService(holidays, attendanceRepo, log)

	// The database is the source of truth when present; CSV files seed an
	// in-memory run otherwise.
	if cfg.Database.Enabled() {
		if _, err := employeeSvc.Restore(ctx); err != nil {
			return err
		}
		if _, err := attendanceSvc.Restore(ctx); err != nil {
			return err
		}
	} else if err := importFiles(ctx, cfg.Import, employeeSvc, attendanceSvc, log); err != nil {
		return err
	}

	providers, err := buildProviders(cfg.Welfare)
	if err != nil {
		return err
	}
	welfareSvc := welfareService.NewWelfareService(providers...)
	payrollSvc := payrollService.NewPayrollService(registry, attendanceSvc, welfareSvc, cfg.Payroll.Workers, log)

	if cfg.Archive.Dir != "" {
		store, err := storage.NewLocalStorage(cfg.Archive.Dir)
		if err != nil {
			return err
		}
		scheduler := cron.NewScheduler(log)
		payrollService.NewRegisterArchiver(payrollSvc, store, log).RegisterJobs(scheduler, cfg.Archive.Interval)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(log,
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewWelfareHandler(welfareSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server running", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildProviders registers the welfare providers in evaluation order.
func buildProviders(cfg config.WelfareConfig) ([]welfare.Provider, error) {
	si, err := welfareService.NewSocialInsurance(cfg.SocialInsuranceRate, cfg.SocialInsuranceMinMonths)
	if err != nil {
		return nil, err
	}
	bonus, err := welfareService.NewBonus(cfg.BonusAmount)
	if err != nil {
		return nil, err
	}

	routes := welfareService.RouteTableFromCoordinates(welfareService.DefaultOffice, welfareService.DefaultRegions)
	if cfg.TransportRoutes != "" {
		km, err := welfareService.ParseRoutes(cfg.TransportRoutes)
		if err != nil {
			return nil, fmt.Errorf("WELFARE_TRANSPORT_ROUTES: %w", err)
		}
		overrides, err := welfareService.NewRouteTable(km)
		if err != nil {
			return nil, fmt.Errorf("WELFARE_TRANSPORT_ROUTES: %w", err)
		}
		routes = routes.With(overrides)
	}
	transport, err := welfareService.NewTransportation(cfg.TransportRatePerKm, routes)
	if err != nil {
		return nil, err
	}

	return []welfare.Provider{si, bonus, transport}, nil
}

func importFiles(ctx context.Context, cfg config.ImportConfig, employees employee.EmployeeService, records attendance.AttendanceService, log *slog.Logger) error {
	if cfg.EmployeesFile != "" {
		f, err := os.Open(cfg.EmployeesFile)
		if err != nil {
			return fmt.Errorf("open employees file: %w", err)
		}
		result, err := employees.Import(ctx, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("import employees: %w", err)
		}
		log.Info("Imported employees file", "file", cfg.EmployeesFile, "imported", result.Imported, "skipped", result.Skipped)
	}

	if cfg.AttendanceFile != "" {
		f, err := os.Open(cfg.AttendanceFile)
		if err != nil {
			return fmt.Errorf("open attendance file: %w", err)
		}
		result, err := records.Import(ctx, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("import attendance: %w", err)
		}
		log.Info("Imported attendance file", "file", cfg.AttendanceFile, "imported", result.Imported, "skipped", result.Skipped)
	}
	return nil
}

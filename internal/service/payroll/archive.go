package payroll

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/cron"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/storage"
)

// RegisterArchiver stores closed-month payroll registers as CSV files.
type RegisterArchiver struct {
	payroll payroll.PayrollService
	store   storage.FileStorage
	now     func() time.Time
	logger  *slog.Logger
}

func NewRegisterArchiver(svc payroll.PayrollService, store storage.FileStorage, logger *slog.Logger) *RegisterArchiver {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegisterArchiver{payroll: svc, store: store, now: time.Now, logger: logger}
}

// ArchivePath is where the register for p is stored: <year>/payroll-register-<year>-<month>.csv
func ArchivePath(p payroll.Period) string {
	return path.Join(strconv.Itoa(p.Year), p.RegisterFilename())
}

// Archive writes the register for period, replacing an existing file.
// No advances are applied.
func (a *RegisterArchiver) Archive(ctx context.Context, period payroll.Period) (string, error) {
	var buf bytes.Buffer
	req := payroll.RegisterRequest{Period: period}
	if err := a.payroll.ExportRegister(ctx, req, &buf); err != nil {
		return "", err
	}

	p := ArchivePath(period)
	if err := a.store.Put(ctx, p, &buf); err != nil {
		return "", fmt.Errorf("failed to archive payroll register: %w", err)
	}
	a.logger.Info("Archived payroll register", "path", p, "month", period.Month, "year", period.Year)
	return p, nil
}

// ArchivePreviousMonth archives last month's register unless it already exists.
func (a *RegisterArchiver) ArchivePreviousMonth(ctx context.Context) error {
	period := payroll.PeriodOf(a.now()).Previous()

	exists, err := a.store.Exists(ctx, ArchivePath(period))
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = a.Archive(ctx, period)
	return err
}

func (a *RegisterArchiver) RegisterJobs(scheduler *cron.Scheduler, interval time.Duration) {
	scheduler.AddJob("archive_payroll_register", interval, a.ArchivePreviousMonth)
}

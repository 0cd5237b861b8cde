package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job represents a scheduled job
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler runs each job on its own ticker until stopped.
type Scheduler struct {
	jobs    []Job
	logger  *slog.Logger
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{logger: logger}
}

// AddJob registers a job. Jobs added after Start are not run.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Fn: fn})
	s.logger.Info("Cron job registered", "name", name, "interval", interval)
}

// Start runs every job immediately and then on its interval, until ctx is
// cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true
	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(ctx, job)
	}

	s.logger.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for running ones to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.running = false
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("Cron scheduler stopped")
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.executeJob(ctx, job)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.executeJob(ctx, job)
		}
	}
}

func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	start := time.Now()
	if err := job.Fn(ctx); err != nil {
		s.logger.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	s.logger.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
}

// RunOnce runs every job once, in registration order, on the caller's goroutine.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	jobs := append([]Job(nil), s.jobs...)
	s.mu.Unlock()

	for _, job := range jobs {
		s.executeJob(ctx, job)
	}
}

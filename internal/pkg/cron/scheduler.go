package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
)

// Job represents a job that runs once a day at a fixed civil time
type Job struct {
	Name string
	At   clock.TimeOfDay
	Fn   func(ctx context.Context) error
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	jobs   []Job
	clock  clock.Clock
	after  func(d time.Duration) <-chan time.Time
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewScheduler creates a new cron scheduler reading the time from clk
func NewScheduler(clk clock.Clock) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make([]Job, 0),
		clock:  clk,
		after:  time.After,
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddDailyJob adds a job firing every day at the given time of day
func (s *Scheduler) AddDailyJob(name string, at clock.TimeOfDay, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name: name,
		At:   at,
		Fn:   fn,
	})
	slog.Info("Cron job registered", "name", name, "at", at.String(), "timezone", s.clock.Location().String())
}

// Start begins running all scheduled jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop gracefully stops all scheduled jobs
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

// NextRun returns the first instant strictly after now at which at occurs.
func NextRun(now time.Time, at clock.TimeOfDay) time.Time {
	next := at.On(now)
	if !next.After(now) {
		next = at.On(now.AddDate(0, 0, 1))
	}
	return next
}

// runJob runs a single job on its schedule
func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	for {
		now := s.clock.Now()
		next := NextRun(now, job.At)
		slog.Debug("Cron job scheduled", "name", job.Name, "next_run", clock.FormatDateTime(next))

		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-s.after(next.Sub(now)):
			s.executeJob(job)
		}
	}
}

// executeJob executes a job and logs results
func (s *Scheduler) executeJob(job Job) {
	start := time.Now()
	slog.Info("Cron job starting", "name", job.Name)

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Info("Cron job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunOnce runs all jobs once
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
}

// Package scanner runs the periodic deadline and retention sweeps.
package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// Job names a scheduled duty.
type Job string

const (
	JobDeadline  Job = "deadline"
	JobRetention Job = "retention"
)

func (j Job) String() string { return string(j) }

// ParseJob returns the job named s.
func ParseJob(s string) (Job, error) {
	switch Job(s) {
	case JobDeadline, JobRetention:
		return Job(s), nil
	}
	return "", domain.NewValidationError("job", fmt.Sprintf("unknown job %q", s))
}

type groupBuyFinder interface {
	ListDeadlineApproaching(ctx context.Context, from, to time.Time, statuses ...domain.GroupBuyStatus) ([]domain.GroupBuy, error)
}

type notificationSweeper interface {
	SoftDeleteReadBefore(ctx context.Context, threshold time.Time) (int, error)
}

type publisher interface {
	Publish(ctx context.Context, ev domain.Event)
}

// Options configures schedules and windows.
type Options struct {
	Location       *time.Location
	DeadlineSpec   string
	RetentionSpec  string
	DeadlineWindow time.Duration
	RetentionDays  int
	JobTimeout     time.Duration
}

// Scanner owns the cron scheduler for both sweeps.
type Scanner struct {
	groupBuys     groupBuyFinder
	notifications notificationSweeper
	bus           publisher
	opts          Options
	cron          *cron.Cron
	now           func() time.Time
	log           *slog.Logger
}

// New creates a scanner and registers both jobs. It fails when a cron spec
// does not parse.
func New(
	log *slog.Logger,
	groupBuys groupBuyFinder,
	notifications notificationSweeper,
	bus publisher,
	opts Options,
) (*Scanner, error) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	log = log.With("service", "scanner")
	cronLog := cron.PrintfLogger(slog.NewLogLogger(log.Handler(), slog.LevelError))

	s := &Scanner{
		groupBuys:     groupBuys,
		notifications: notifications,
		bus:           bus,
		opts:          opts,
		cron: cron.New(
			cron.WithLocation(opts.Location),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		now: time.Now,
		log: log,
	}

	if _, err := s.cron.AddFunc(opts.DeadlineSpec, func() { s.scheduled(JobDeadline) }); err != nil {
		return nil, fmt.Errorf("schedule %s job: %w", JobDeadline, err)
	}
	if _, err := s.cron.AddFunc(opts.RetentionSpec, func() { s.scheduled(JobRetention) }); err != nil {
		return nil, fmt.Errorf("schedule %s job: %w", JobRetention, err)
	}

	return s, nil
}

// Start launches the scheduler in its own goroutine.
func (s *Scanner) Start() {
	s.cron.Start()
	s.log.Info("scanner started",
		slog.String("timezone", s.opts.Location.String()),
		slog.String("deadline_spec", s.opts.DeadlineSpec),
		slog.String("retention_spec", s.opts.RetentionSpec),
	)
}

// Stop halts the scheduler and waits for running jobs or ctx, whichever
// comes first.
func (s *Scanner) Stop(ctx context.Context) {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.log.Info("scanner stopped")
}

// RunNow runs one job synchronously and returns how many rows or events it
// touched.
func (s *Scanner) RunNow(ctx context.Context, job Job) (int, error) {
	switch job {
	case JobDeadline:
		return s.ScanDeadlines(ctx)
	case JobRetention:
		return s.SweepRetention(ctx)
	}
	return 0, fmt.Errorf("run %q: %w", job, domain.ErrValidation)
}

func (s *Scanner) scheduled(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.JobTimeout)
	defer cancel()

	// Failures are already logged by the job; the next tick retries.
	_, _ = s.RunNow(ctx, job)
}

package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

// Runner starts one sync run.
type Runner interface {
	Run(ctx context.Context, opts usecase.RunOptions) (*domain.SyncRunResult, error)
}

// Job fires a cadence on a fixed interval.
type Job struct {
	Cadence  domain.Cadence
	Interval time.Duration
	// RunOnStart fires the job once before the first tick.
	RunOnStart bool
}

// Config for Scheduler.
type Config struct {
	Runner Runner
	Jobs   []Job
	Logger zerolog.Logger
}

// Scheduler drives the heartbeat and comprehensive cadences in-process.
// Each job runs in its own loop, so a slow run delays only its own next tick.
type Scheduler struct {
	runner Runner
	jobs   []Job
	logger zerolog.Logger
}

// New creates a new Scheduler. Jobs without a positive interval are dropped.
func New(cfg Config) *Scheduler {
	jobs := make([]Job, 0, len(cfg.Jobs))
	for _, j := range cfg.Jobs {
		if j.Interval > 0 {
			jobs = append(jobs, j)
		}
	}

	return &Scheduler{
		runner: cfg.Runner,
		jobs:   jobs,
		logger: cfg.Logger.With().Str("component", "scheduler").Logger(),
	}
}

// Start runs every job until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info().Int("jobs", len(s.jobs)).Msg("scheduler started")

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.loop(ctx, job)
		}(job)
	}
	wg.Wait()

	s.logger.Info().Msg("scheduler shutting down")
	return ctx.Err()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	logger := s.logger.With().Str("cadence", string(job.Cadence)).Dur("interval", job.Interval).Logger()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	if job.RunOnStart {
		s.fire(ctx, job, logger)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fire(ctx, job, logger)
		}
	}
}

// fire runs one cadence. Failures are logged; the next tick retries.
func (s *Scheduler) fire(ctx context.Context, job Job, logger zerolog.Logger) {
	if ctx.Err() != nil {
		return
	}

	run, err := s.runner.Run(ctx, usecase.RunOptions{Cadence: job.Cadence})
	if err != nil {
		logger.Error().Err(err).Msg("scheduled sync run failed")
		return
	}

	logger.Info().
		Str("run_id", run.RunID).
		Int("processed", run.Processed).
		Int("successful", run.Successful).
		Int("failed", run.Failed).
		Int("skipped", run.Skipped).
		Int("new_events", run.TotalNewEvents).
		Msg("scheduled sync run completed")
}

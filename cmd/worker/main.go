package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/iho/revsync/internal/app"
	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/infrastructure/config"
	"github.com/iho/revsync/internal/infrastructure/logger"
	"github.com/iho/revsync/internal/infrastructure/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Process: "worker"})

	if !cfg.SchedulerEnabled {
		log.Info().Msg("scheduler disabled; nothing to do")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log, prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize")
	}
	defer a.Close()

	s := scheduler.New(scheduler.Config{
		Runner: a.Sync,
		Jobs:   schedulerJobs(cfg),
		Logger: log,
	})

	if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("scheduler stopped")
	}
	log.Info().Msg("worker stopped")
}

// schedulerJobs maps the configured intervals to cadences. The heartbeat runs
// once at startup so a fresh deploy does not wait a full interval.
func schedulerJobs(cfg *config.Config) []scheduler.Job {
	return []scheduler.Job{
		{Cadence: domain.CadenceHeartbeat, Interval: cfg.HeartbeatInterval, RunOnStart: true},
		{Cadence: domain.CadenceComprehensive, Interval: cfg.ComprehensiveInterval},
	}
}

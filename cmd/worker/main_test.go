package main

import (
	"testing"
	"time"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/infrastructure/config"
)

func TestSchedulerJobs(t *testing.T) {
	cfg := &config.Config{HeartbeatInterval: 10 * time.Minute, ComprehensiveInterval: 24 * time.Hour}

	jobs := schedulerJobs(cfg)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Cadence != domain.CadenceHeartbeat || jobs[0].Interval != 10*time.Minute || !jobs[0].RunOnStart {
		t.Fatalf("unexpected heartbeat job %+v", jobs[0])
	}
	if jobs[1].Cadence != domain.CadenceComprehensive || jobs[1].Interval != 24*time.Hour || jobs[1].RunOnStart {
		t.Fatalf("unexpected comprehensive job %+v", jobs[1])
	}
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// Cadence identifies which trigger started a sync run.
type Cadence string

const (
	// CadenceHeartbeat is the frequent incremental pass resuming from each cursor.
	CadenceHeartbeat Cadence = "heartbeat"
	// CadenceComprehensive re-walks a lookback window and refreshes rollups.
	CadenceComprehensive Cadence = "comprehensive"
	// CadenceManual is an operator-triggered run with heartbeat semantics.
	CadenceManual Cadence = "manual"
)

// ParseCadence parses a cadence name.
func ParseCadence(raw string) (Cadence, error) {
	switch c := Cadence(strings.ToLower(strings.TrimSpace(raw))); c {
	case CadenceHeartbeat, CadenceComprehensive, CadenceManual:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCadence, raw)
	}
}

// RefreshesRollups reports whether runs of this cadence rebuild supplementary rollups.
func (c Cadence) RefreshesRollups() bool {
	return c == CadenceComprehensive
}

// AccountResult is the outcome of one account's pipeline within a run.
type AccountResult struct {
	AccountID      string
	Success        bool
	Skipped        bool
	NewEvents      int
	UpdatedEvents  int
	FailedEvents   int
	Pages          int
	CeilingReached bool
	Error          string
	ErrorKind      ErrorKind
	Warnings       []string
	Reconciliation *ReconcileResult
	Duration       time.Duration
}

// SyncRunResult is the run summary returned to the trigger.
type SyncRunResult struct {
	RunID          string
	Cadence        Cadence
	StartedAt      time.Time
	FinishedAt     time.Time
	Processed      int
	Successful     int
	Failed         int
	Skipped        int
	TotalNewEvents int
	PerAccount     []AccountResult
}

// Tally recomputes the run counters from PerAccount.
func (r *SyncRunResult) Tally() {
	r.Processed, r.Successful, r.Failed, r.Skipped, r.TotalNewEvents = 0, 0, 0, 0, 0
	for _, a := range r.PerAccount {
		r.Processed++
		r.TotalNewEvents += a.NewEvents
		switch {
		case a.Success:
			r.Successful++
		case a.Skipped:
			r.Skipped++
		default:
			r.Failed++
		}
	}
}

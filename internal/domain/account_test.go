package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name        string
		mode        ReconcileMode
		cached      int64
		computed    int64
		wantApply   bool
		wantSkipped bool
	}{
		{"normal higher applies", ReconcileNormal, 5000, 7700, true, false},
		{"normal equal is a no-op", ReconcileNormal, 5000, 5000, false, false},
		{"normal lower is withheld", ReconcileNormal, 5000, 4000, false, true},
		{"force lower applies", ReconcileForce, 5000, 4000, true, false},
		{"force higher applies", ReconcileForce, 5000, 6000, true, false},
		{"force equal is a no-op", ReconcileForce, 5000, 5000, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apply, skipped := Decide(tt.mode, tt.cached, tt.computed)
			if apply != tt.wantApply || skipped != tt.wantSkipped {
				t.Errorf("Decide() = (%v, %v), want (%v, %v)", apply, skipped, tt.wantApply, tt.wantSkipped)
			}
		})
	}
}

func TestSyncCursor_LeaseAvailable(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-time.Minute)
	old := now.Add(-time.Hour)

	tests := []struct {
		name   string
		cursor SyncCursor
		want   bool
	}{
		{"idle", SyncCursor{}, true},
		{"held recently", SyncCursor{SyncInProgress: true, LeaseAcquiredAt: &recent}, false},
		{"held but stale", SyncCursor{SyncInProgress: true, LeaseAcquiredAt: &old}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cursor.LeaseAvailable(now, 15*time.Minute); got != tt.want {
				t.Errorf("LeaseAvailable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSyncCursor_AdvancedNeverRegresses(t *testing.T) {
	synced := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	c := &SyncCursor{LastSyncedAt: &synced}

	older := c.Advanced(synced.Add(-48*time.Hour), "tok")
	if !older.Since.Equal(synced) || older.PageToken != "tok" {
		t.Fatalf("expected watermark to stay at %v, got %+v", synced, older)
	}

	newer := c.Advanced(synced.Add(time.Hour), "")
	if !newer.Since.Equal(synced.Add(time.Hour)) {
		t.Fatalf("expected watermark to advance, got %+v", newer)
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{nil, ErrorKindNone},
		{&UpstreamError{Kind: ErrAuthExpired, StatusCode: 401}, ErrorKindAuthExpired},
		{fmt.Errorf("page 3: %w", &UpstreamError{Kind: ErrRateLimited, StatusCode: 429}), ErrorKindRateLimited},
		{&UpstreamError{Kind: ErrTransientNetwork, Message: "reset"}, ErrorKindTransientNetwork},
		{&UpstreamError{Kind: ErrPermanentUpstream, StatusCode: 404}, ErrorKindPermanentUpstream},
		{fmt.Errorf("%w: 2 events", ErrWriteFailure), ErrorKindWriteFailure},
		{ErrSyncInProgress, ErrorKindInProgress},
		{context.DeadlineExceeded, ErrorKindDeadline},
		{errors.New("boom"), ErrorKindInternal},
	}

	for _, tt := range tests {
		if got := ClassifyError(tt.err); got != tt.want {
			t.Errorf("ClassifyError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestSyncRunResult_Tally(t *testing.T) {
	r := &SyncRunResult{PerAccount: []AccountResult{
		{AccountID: "a", Success: true, NewEvents: 2},
		{AccountID: "b", Skipped: true, ErrorKind: ErrorKindInProgress},
		{AccountID: "c", Error: "boom", NewEvents: 1},
	}}
	r.Tally()

	if r.Processed != 3 || r.Successful != 1 || r.Skipped != 1 || r.Failed != 1 || r.TotalNewEvents != 3 {
		t.Fatalf("unexpected tally: %+v", r)
	}
}

func TestParseCadence(t *testing.T) {
	if c, err := ParseCadence("Heartbeat"); err != nil || c != CadenceHeartbeat {
		t.Fatalf("expected heartbeat, got %q %v", c, err)
	}
	if _, err := ParseCadence("hourly"); !errors.Is(err, ErrInvalidCadence) {
		t.Fatalf("expected ErrInvalidCadence, got %v", err)
	}
}

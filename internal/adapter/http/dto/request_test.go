package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/iho/revsync/internal/domain"
)

func TestWebhookEventRequest_ToUseCaseInput(t *testing.T) {
	var req WebhookEventRequest
	body := `{"platform_user_id":"p-100","event_id":"tx-9","occurred_at":"2024-03-01T12:30:00Z",
		"category":"tips","gross":"10.00","net":9.5,"counterparty_id":"fan-1"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := Validate(&req); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.GrossAmount != 1000 || input.NetAmount != 950 {
		t.Errorf("unexpected amounts %d/%d", input.GrossAmount, input.NetAmount)
	}
	if input.UpstreamRef != "tx-9" || input.PlatformUserID != "p-100" {
		t.Errorf("unexpected input %+v", input)
	}
	if !input.OccurredAt.Equal(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)) {
		t.Errorf("unexpected occurred_at %v", input.OccurredAt)
	}
}

func TestWebhookEventRequest_RejectsSubMinorAmounts(t *testing.T) {
	var req WebhookEventRequest
	if err := json.Unmarshal([]byte(`{"gross":"1.001","net":"1"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := req.ToUseCaseInput(); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     any
		wantErr string
	}{
		{name: "webhook missing fields", req: &WebhookEventRequest{}, wantErr: "PlatformUserID"},
		{name: "webhook missing timestamp", req: &WebhookEventRequest{PlatformUserID: "p", Category: "tip"}, wantErr: "OccurredAt"},
		{name: "sync empty body", req: &SyncRequest{}},
		{name: "sync blank account id", req: &SyncRequest{AccountIDs: []string{"A", ""}}, wantErr: "AccountIDs[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRunFromDomain(t *testing.T) {
	run := &domain.SyncRunResult{
		RunID:   "run-1",
		Cadence: domain.CadenceHeartbeat,
		PerAccount: []domain.AccountResult{
			{AccountID: "A", Success: true, NewEvents: 2, Duration: 1500 * time.Millisecond,
				Reconciliation: &domain.ReconcileResult{AccountID: "A", Mode: domain.ReconcileNormal, OldTotal: 100, NewTotal: 250, Changed: true}},
			{AccountID: "B", Skipped: true, ErrorKind: domain.ErrorKindRateLimited},
		},
	}
	run.Tally()

	resp := RunFromDomain(run)
	if resp.Processed != 2 || resp.Successful != 1 || resp.Skipped != 1 || resp.TotalNewEvents != 2 {
		t.Fatalf("unexpected counters %+v", resp)
	}
	if resp.PerAccount[0].DurationMS != 1500 {
		t.Errorf("expected duration 1500ms, got %d", resp.PerAccount[0].DurationMS)
	}
	if got := resp.PerAccount[0].Reconciliation.NewTotal.String(); got != "2.5" {
		t.Errorf("expected new total 2.5, got %s", got)
	}
	if resp.PerAccount[1].ErrorKind != "rate_limited" {
		t.Errorf("unexpected error kind %q", resp.PerAccount[1].ErrorKind)
	}
}

func TestDiagnosisFromDomain(t *testing.T) {
	upstream := int64(1500)
	diff := int64(600)
	d := &domain.Diagnosis{
		AccountID:   "A",
		CachedTotal: 5000,
		LedgerTotal: 900,
		Discrepancy: -4100,
		Breakdown:   []domain.SourceKindTotal{{SourceKind: domain.SourceKindTip, Total: 900, EventCount: 1}},
		Upstream:    &domain.UpstreamComparison{Total: &upstream, Discrepancy: &diff},
		Cursor:      &domain.SyncCursor{AccountID: "A", PageToken: "pg"},
	}

	resp := DiagnosisFromDomain(d)
	if resp.InSync {
		t.Error("expected out of sync")
	}
	if resp.Discrepancy.String() != "-41" {
		t.Errorf("unexpected discrepancy %s", resp.Discrepancy)
	}
	if resp.Upstream == nil || resp.Upstream.Total.String() != "15" {
		t.Errorf("unexpected upstream %+v", resp.Upstream)
	}
	if resp.Cursor == nil || !resp.Cursor.HasPageToken {
		t.Errorf("unexpected cursor %+v", resp.Cursor)
	}
	if len(resp.Recent) != 0 {
		t.Errorf("expected no records, got %d", len(resp.Recent))
	}
}

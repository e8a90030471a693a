package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

// Amount renders minor units as a major-unit decimal.
func Amount(minor int64) decimal.Decimal {
	return decimal.New(minor, -domain.MinorUnitExponent)
}

// AccountResponse represents an account and its cached revenue summary.
type AccountResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	PlatformUserID   string          `json:"platform_user_id"`
	Status           string          `json:"status"`
	FailureReason    string          `json:"failure_reason,omitempty"`
	CachedTotal      decimal.Decimal `json:"cached_total"`
	CachedTotalMinor int64           `json:"cached_total_minor"`
	SummaryUpdatedAt *time.Time      `json:"summary_updated_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:               a.ID,
		Name:             a.Name,
		PlatformUserID:   a.PlatformUserID,
		Status:           string(a.Status),
		FailureReason:    a.FailureReason,
		CachedTotal:      Amount(a.CachedTotal),
		CachedTotalMinor: a.CachedTotal,
		SummaryUpdatedAt: a.SummaryUpdatedAt,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// EventResponse represents a ledger event.
type EventResponse struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"account_id"`
	OccurredAt     time.Time       `json:"occurred_at"`
	SourceKind     string          `json:"source_kind"`
	CounterpartyID string          `json:"counterparty_id"`
	Gross          decimal.Decimal `json:"gross"`
	Net            decimal.Decimal `json:"net"`
	UpstreamRef    *string         `json:"upstream_ref,omitempty"`
	Description    string          `json:"description,omitempty"`
	IngestedAt     time.Time       `json:"ingested_at"`
}

// EventsFromDomain converts domain events to responses.
func EventsFromDomain(events []*domain.LedgerEvent) []*EventResponse {
	result := make([]*EventResponse, len(events))
	for i, e := range events {
		result[i] = &EventResponse{
			ID:             e.ID,
			AccountID:      e.AccountID,
			OccurredAt:     e.OccurredAt,
			SourceKind:     string(e.SourceKind),
			CounterpartyID: e.CounterpartyID,
			Gross:          Amount(e.GrossAmount),
			Net:            Amount(e.NetAmount),
			UpstreamRef:    e.UpstreamRef,
			Description:    e.Description,
			IngestedAt:     e.IngestedAt,
		}
	}
	return result
}

// ListEventsResponse is a page of ledger events.
type ListEventsResponse struct {
	Events []*EventResponse `json:"events"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// ReconcileResponse reports one reconciliation.
type ReconcileResponse struct {
	AccountID string          `json:"account_id"`
	Mode      string          `json:"mode"`
	OldTotal  decimal.Decimal `json:"old_total"`
	NewTotal  decimal.Decimal `json:"new_total"`
	Changed   bool            `json:"changed"`
	Skipped   bool            `json:"skipped"`
}

// ReconcileFromDomain converts a reconcile result; nil stays nil.
func ReconcileFromDomain(r *domain.ReconcileResult) *ReconcileResponse {
	if r == nil {
		return nil
	}
	return &ReconcileResponse{
		AccountID: r.AccountID,
		Mode:      string(r.Mode),
		OldTotal:  Amount(r.OldTotal),
		NewTotal:  Amount(r.NewTotal),
		Changed:   r.Changed,
		Skipped:   r.Skipped,
	}
}

// AccountResultResponse is one account's outcome within a run.
type AccountResultResponse struct {
	AccountID      string             `json:"account_id"`
	Success        bool               `json:"success"`
	Skipped        bool               `json:"skipped,omitempty"`
	NewEvents      int                `json:"new_events"`
	UpdatedEvents  int                `json:"updated_events,omitempty"`
	FailedEvents   int                `json:"failed_events,omitempty"`
	Pages          int                `json:"pages"`
	CeilingReached bool               `json:"ceiling_reached,omitempty"`
	Error          string             `json:"error,omitempty"`
	ErrorKind      string             `json:"error_kind,omitempty"`
	Warnings       []string           `json:"warnings,omitempty"`
	Reconciliation *ReconcileResponse `json:"reconciliation,omitempty"`
	DurationMS     int64              `json:"duration_ms"`
}

// RunResponse is a sync run summary.
type RunResponse struct {
	RunID          string                   `json:"run_id"`
	Cadence        string                   `json:"cadence"`
	StartedAt      time.Time                `json:"started_at"`
	FinishedAt     time.Time                `json:"finished_at"`
	Processed      int                      `json:"processed"`
	Successful     int                      `json:"successful"`
	Failed         int                      `json:"failed"`
	Skipped        int                      `json:"skipped"`
	TotalNewEvents int                      `json:"total_new_events"`
	PerAccount     []*AccountResultResponse `json:"per_account"`
}

// RunFromDomain converts a run summary to response.
func RunFromDomain(run *domain.SyncRunResult) *RunResponse {
	resp := &RunResponse{
		RunID:          run.RunID,
		Cadence:        string(run.Cadence),
		StartedAt:      run.StartedAt,
		FinishedAt:     run.FinishedAt,
		Processed:      run.Processed,
		Successful:     run.Successful,
		Failed:         run.Failed,
		Skipped:        run.Skipped,
		TotalNewEvents: run.TotalNewEvents,
		PerAccount:     make([]*AccountResultResponse, len(run.PerAccount)),
	}
	for i, a := range run.PerAccount {
		resp.PerAccount[i] = &AccountResultResponse{
			AccountID:      a.AccountID,
			Success:        a.Success,
			Skipped:        a.Skipped,
			NewEvents:      a.NewEvents,
			UpdatedEvents:  a.UpdatedEvents,
			FailedEvents:   a.FailedEvents,
			Pages:          a.Pages,
			CeilingReached: a.CeilingReached,
			Error:          a.Error,
			ErrorKind:      string(a.ErrorKind),
			Warnings:       a.Warnings,
			Reconciliation: ReconcileFromDomain(a.Reconciliation),
			DurationMS:     a.Duration.Milliseconds(),
		}
	}
	return resp
}

// BreakdownResponse is one source kind's share of the ledger total.
type BreakdownResponse struct {
	SourceKind string          `json:"source_kind"`
	Total      decimal.Decimal `json:"total"`
	EventCount int64           `json:"event_count"`
}

// UpstreamResponse is the platform-reported total or why it is missing.
type UpstreamResponse struct {
	Total       *decimal.Decimal `json:"total,omitempty"`
	Discrepancy *decimal.Decimal `json:"discrepancy,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// CursorResponse is the account's sync watermark.
type CursorResponse struct {
	LastSyncedAt   *time.Time `json:"last_synced_at,omitempty"`
	HasPageToken   bool       `json:"has_page_token"`
	SyncInProgress bool       `json:"sync_in_progress"`
	LastError      string     `json:"last_error,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ReconciliationRecordResponse is one reconciliation log row.
type ReconciliationRecordResponse struct {
	ID        string          `json:"id"`
	Mode      string          `json:"mode"`
	OldTotal  decimal.Decimal `json:"old_total"`
	NewTotal  decimal.Decimal `json:"new_total"`
	Applied   bool            `json:"applied"`
	Reason    string          `json:"reason,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// DiagnosisResponse is a read-only comparison of cached and ledger totals.
type DiagnosisResponse struct {
	AccountID   string                          `json:"account_id"`
	AccountName string                          `json:"account_name"`
	Status      string                          `json:"status"`
	Basis       string                          `json:"basis"`
	InSync      bool                            `json:"in_sync"`
	CachedTotal decimal.Decimal                 `json:"cached_total"`
	LedgerTotal decimal.Decimal                 `json:"ledger_total"`
	Discrepancy decimal.Decimal                 `json:"discrepancy"`
	EventCount  int64                           `json:"event_count"`
	Breakdown   []BreakdownResponse             `json:"breakdown"`
	Upstream    *UpstreamResponse               `json:"upstream,omitempty"`
	Cursor      *CursorResponse                 `json:"cursor,omitempty"`
	Recent      []*ReconciliationRecordResponse `json:"recent_reconciliations"`
	GeneratedAt time.Time                       `json:"generated_at"`
}

// DiagnosisFromDomain converts a diagnosis to response.
func DiagnosisFromDomain(d *domain.Diagnosis) *DiagnosisResponse {
	resp := &DiagnosisResponse{
		AccountID:   d.AccountID,
		AccountName: d.AccountName,
		Status:      string(d.Status),
		Basis:       string(d.Basis),
		InSync:      d.InSync(),
		CachedTotal: Amount(d.CachedTotal),
		LedgerTotal: Amount(d.LedgerTotal),
		Discrepancy: Amount(d.Discrepancy),
		EventCount:  d.EventCount,
		Breakdown:   make([]BreakdownResponse, len(d.Breakdown)),
		Recent:      make([]*ReconciliationRecordResponse, len(d.Recent)),
		GeneratedAt: d.GeneratedAt,
	}
	for i, b := range d.Breakdown {
		resp.Breakdown[i] = BreakdownResponse{SourceKind: string(b.SourceKind), Total: Amount(b.Total), EventCount: b.EventCount}
	}
	for i, rec := range d.Recent {
		resp.Recent[i] = &ReconciliationRecordResponse{
			ID:        rec.ID,
			Mode:      string(rec.Mode),
			OldTotal:  Amount(rec.OldTotal),
			NewTotal:  Amount(rec.NewTotal),
			Applied:   rec.Applied,
			Reason:    rec.Reason,
			CreatedAt: rec.CreatedAt,
		}
	}
	if d.Upstream != nil {
		up := &UpstreamResponse{Error: d.Upstream.Error}
		if d.Upstream.Total != nil {
			total := Amount(*d.Upstream.Total)
			up.Total = &total
		}
		if d.Upstream.Discrepancy != nil {
			diff := Amount(*d.Upstream.Discrepancy)
			up.Discrepancy = &diff
		}
		resp.Upstream = up
	}
	if c := d.Cursor; c != nil {
		resp.Cursor = &CursorResponse{
			LastSyncedAt:   c.LastSyncedAt,
			HasPageToken:   c.PageToken != "",
			SyncInProgress: c.SyncInProgress,
			LastError:      c.LastError,
			UpdatedAt:      c.UpdatedAt,
		}
	}
	return resp
}

// WebhookResponse reports what an ingested webhook did.
type WebhookResponse struct {
	AccountID      string             `json:"account_id"`
	EventID        string             `json:"event_id"`
	Outcome        string             `json:"outcome"`
	Reconciliation *ReconcileResponse `json:"reconciliation,omitempty"`
}

// WebhookFromUseCase converts a webhook result to response.
func WebhookFromUseCase(r *usecase.WebhookResult) *WebhookResponse {
	return &WebhookResponse{
		AccountID:      r.AccountID,
		EventID:        r.EventID,
		Outcome:        string(r.Outcome),
		Reconciliation: ReconcileFromDomain(r.Reconciliation),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

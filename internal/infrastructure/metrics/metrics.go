package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/revsync/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Sync metrics
	SyncRuns        *prometheus.CounterVec
	SyncRunDuration *prometheus.HistogramVec
	AccountOutcomes *prometheus.CounterVec
	AccountDuration *prometheus.HistogramVec

	// Ingestion metrics
	EventsIngested *prometheus.CounterVec

	// Platform metrics
	PagesFetched  prometheus.Counter
	FetchRetries  *prometheus.CounterVec
	FetchFailures *prometheus.CounterVec

	// Reconciliation metrics
	Reconciliations *prometheus.CounterVec
	ReconcileDelta  prometheus.Histogram

	// Token metrics
	TokenCache *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates the metrics and registers them on reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SyncRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revsync_sync_runs_total",
				Help: "Total sync runs by cadence and outcome",
			},
			[]string{"cadence", "outcome"},
		),
		SyncRunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "revsync_sync_run_duration_seconds",
				Help:    "Wall time of sync runs",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 240, 480},
			},
			[]string{"cadence"},
		),
		AccountOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revsync_account_sync_total",
				Help: "Per-account pipeline outcomes by error kind",
			},
			[]string{"cadence", "outcome", "error_kind"},
		),
		AccountDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "revsync_account_sync_duration_seconds",
				Help:    "Duration of one account's pipeline",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"cadence"},
		),

		EventsIngested: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revsync_events_ingested_total",
				Help: "Ledger events written by outcome",
			},
			[]string{"outcome"},
		),

		PagesFetched: factory.NewCounter(prometheus.CounterOpts{
			Name: "revsync_platform_pages_fetched_total",
			Help: "Ledger pages fetched from the platform",
		}),
		FetchRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revsync_platform_fetch_retries_total",
				Help: "Platform request retries by reason",
			},
			[]string{"reason"},
		),
		FetchFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revsync_platform_fetch_failures_total",
				Help: "Platform requests that failed after retries, by error kind",
			},
			[]string{"error_kind"},
		),

		Reconciliations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revsync_reconciliations_total",
				Help: "Reconciliation outcomes by mode",
			},
			[]string{"mode", "outcome"},
		),
		ReconcileDelta: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "revsync_reconcile_delta_minor_units",
			Help:    "Absolute change applied to cached totals",
			Buckets: []float64{1, 100, 1000, 10000, 100000, 1000000},
		}),

		TokenCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revsync_token_cache_total",
				Help: "Token cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveRun records a finished run.
func (m *Metrics) ObserveRun(cadence domain.Cadence, run *domain.SyncRunResult) {
	outcome := "success"
	switch {
	case run.Failed > 0 && run.Successful == 0:
		outcome = "failed"
	case run.Failed > 0:
		outcome = "partial"
	}

	m.SyncRuns.WithLabelValues(string(cadence), outcome).Inc()
	m.SyncRunDuration.WithLabelValues(string(cadence)).Observe(run.FinishedAt.Sub(run.StartedAt).Seconds())
}

// ObserveAccount records one account's pipeline outcome.
func (m *Metrics) ObserveAccount(cadence domain.Cadence, result *domain.AccountResult) {
	outcome := "failed"
	switch {
	case result.Success:
		outcome = "success"
	case result.Skipped:
		outcome = "skipped"
	}

	m.AccountOutcomes.WithLabelValues(string(cadence), outcome, string(result.ErrorKind)).Inc()
	m.AccountDuration.WithLabelValues(string(cadence)).Observe(result.Duration.Seconds())
}

// ObserveWrite counts written events by outcome.
func (m *Metrics) ObserveWrite(outcome string, count int) {
	if count <= 0 {
		return
	}
	m.EventsIngested.WithLabelValues(outcome).Add(float64(count))
}

// ObserveReconcile records a reconciliation decision.
func (m *Metrics) ObserveReconcile(mode domain.ReconcileMode, result *domain.ReconcileResult) {
	outcome := "unchanged"
	switch {
	case result.Skipped:
		outcome = "skipped"
	case result.Changed && result.NewTotal < result.OldTotal:
		outcome = "forced"
	case result.Changed:
		outcome = "applied"
	}

	m.Reconciliations.WithLabelValues(string(mode), outcome).Inc()
	if result.Changed {
		delta := result.NewTotal - result.OldTotal
		if delta < 0 {
			delta = -delta
		}
		m.ReconcileDelta.Observe(float64(delta))
	}
}

// ObservePage counts a fetched ledger page.
func (m *Metrics) ObservePage() {
	m.PagesFetched.Inc()
}

// ObserveRetry counts a retried platform request.
func (m *Metrics) ObserveRetry(reason string) {
	m.FetchRetries.WithLabelValues(reason).Inc()
}

// ObserveFetchFailure counts a platform request that gave up.
func (m *Metrics) ObserveFetchFailure(kind domain.ErrorKind) {
	m.FetchFailures.WithLabelValues(string(kind)).Inc()
}

// ObserveTokenCache counts a token cache hit or miss.
func (m *Metrics) ObserveTokenCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.TokenCache.WithLabelValues(result).Inc()
}

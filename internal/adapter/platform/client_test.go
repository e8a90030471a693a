package platform

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/revsync/internal/domain"
)

type stubTokens struct {
	mu          sync.Mutex
	tokens      []string
	calls       int
	invalidated int
}

func (s *stubTokens) Token(context.Context, string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.invalidated
	if idx >= len(s.tokens) {
		idx = len(s.tokens) - 1
	}
	s.calls++
	return s.tokens[idx], nil
}

func (s *stubTokens) Invalidate(context.Context, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidated++
	return nil
}

type recordingObserver struct {
	pages    int
	retries  []string
	failures []domain.ErrorKind
}

func (o *recordingObserver) ObservePage()               { o.pages++ }
func (o *recordingObserver) ObserveRetry(reason string) { o.retries = append(o.retries, reason) }
func (o *recordingObserver) ObserveFetchFailure(kind domain.ErrorKind) {
	o.failures = append(o.failures, kind)
}

var account = &domain.Account{ID: "acc-1", PlatformUserID: "p-100", Name: "Alpha"}

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens *stubTokens) (*Client, *recordingObserver) {
	t.Helper()
	return newTestClientWith(t, handler, tokens, Config{
		PageSize:       2,
		MaxRetries:     3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	})
}

func newTestClientWith(t *testing.T, handler http.HandlerFunc, tokens *stubTokens, cfg Config) (*Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	if tokens == nil {
		tokens = &stubTokens{tokens: []string{"tok-1"}}
	}
	cfg.BaseURL = srv.URL
	client, err := NewClient(cfg, tokens, zerolog.Nop())
	require.NoError(t, err)

	obs := &recordingObserver{}
	return client.WithObserver(obs), obs
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "not a url"}, &stubTokens{tokens: []string{"x"}}, zerolog.Nop())
	assert.Error(t, err)
}

func TestClient_FetchPage(t *testing.T) {
	since := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts/p-100/transactions", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, since.Format(time.RFC3339Nano), r.URL.Query().Get("since"))
		assert.Equal(t, "pg-2", r.URL.Query().Get("page_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{"event_id": "tx-1", "occurred_at": "2024-03-01T12:30:00Z", "category": "Tips",
				 "gross": "10.00", "net": 9, "counterparty_id": "fan-1", "description": "thanks"},
				{"occurred_at": "2024-03-01T13:00:00.123456Z", "category": "ppv",
				 "gross": 25.5, "net": "20.40"}
			],
			"next_page_token": "pg-3",
			"has_more": true
		}`))
	}, nil)

	page, err := client.FetchPage(context.Background(), account, domain.Cursor{Since: since, PageToken: "pg-2"})
	require.NoError(t, err)
	require.Len(t, page.Events, 2)
	assert.True(t, page.HasMore)
	assert.Equal(t, "pg-3", page.NextPageToken)

	first := page.Events[0]
	assert.Equal(t, "acc-1", first.AccountID)
	assert.Equal(t, domain.SourceKindTip, first.SourceKind)
	assert.Equal(t, int64(1000), first.GrossAmount)
	assert.Equal(t, int64(900), first.NetAmount)
	assert.Equal(t, "fan-1", first.CounterpartyID)
	assert.Equal(t, "thanks", first.Description)
	require.NotNil(t, first.UpstreamRef)
	assert.Equal(t, "tx-1", *first.UpstreamRef)

	second := page.Events[1]
	assert.Equal(t, domain.SourceKindContentUnlock, second.SourceKind)
	assert.Equal(t, int64(2550), second.GrossAmount)
	assert.Equal(t, int64(2040), second.NetAmount)
	assert.Empty(t, second.CounterpartyID)
	assert.Nil(t, second.UpstreamRef)

	assert.Equal(t, 1, obs.pages)
}

func TestClient_FetchPage_OmitsZeroSince(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("since"))
		assert.False(t, r.URL.Query().Has("page_token"))
		_, _ = w.Write([]byte(`{"items": []}`))
	}, nil)

	page, err := client.FetchPage(context.Background(), account, domain.Cursor{})
	require.NoError(t, err)
	assert.Empty(t, page.Events)
	assert.False(t, page.HasMore)
}

func TestClient_FetchPage_MalformedItemsSkipped(t *testing.T) {
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [
			{"event_id": "tx-1", "occurred_at": "2024-03-01T12:30:00Z", "category": "tip", "gross": "1.005", "net": "1"},
			{"occurred_at": "2024-03-01T12:31:00Z", "category": "tip", "gross": "2.00", "net": "1.80"},
			{"category": "tip", "gross": "3.00", "net": "2.70"}
		], "next_page_token": "n2", "has_more": true}`))
	}, nil)

	page, err := client.FetchPage(context.Background(), account, domain.Cursor{})
	require.NoError(t, err)
	require.Len(t, page.Events, 1)
	assert.Equal(t, int64(180), page.Events[0].NetAmount)
	require.Len(t, page.Rejected, 2)
	assert.Contains(t, page.Rejected[0], "item 0 (tx-1): invalid gross")
	assert.Contains(t, page.Rejected[1], "item 2: invalid occurred_at")
	assert.True(t, page.HasMore)
	assert.Equal(t, "n2", page.NextPageToken)
	assert.Equal(t, 1, obs.pages)
	assert.Empty(t, obs.failures)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantErr    error
		wantCalls  int32
		wantStatus int
	}{
		{name: "not found is permanent", status: http.StatusNotFound, wantErr: domain.ErrPermanentUpstream, wantCalls: 1, wantStatus: 404},
		{name: "bad request is permanent", status: http.StatusBadRequest, wantErr: domain.ErrPermanentUpstream, wantCalls: 1, wantStatus: 400},
		{name: "server error retries then gives up", status: http.StatusBadGateway, wantErr: domain.ErrTransientNetwork, wantCalls: 4, wantStatus: 502},
		{name: "rate limit retries then gives up", status: http.StatusTooManyRequests, wantErr: domain.ErrRateLimited, wantCalls: 4, wantStatus: 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				http.Error(w, "nope", tt.status)
			}, nil)

			_, err := client.FetchPage(context.Background(), account, domain.Cursor{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCalls, calls.Load())

			var ue *domain.UpstreamError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tt.wantStatus, ue.StatusCode)
			assert.Contains(t, ue.Message, "nope")
		})
	}
}

func TestClient_RecoversAfterTransientFailures(t *testing.T) {
	var calls atomic.Int32
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch calls.Add(1) {
		case 1:
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			_, _ = w.Write([]byte(`{"items": [{"occurred_at": "2024-03-01T12:30:00Z", "category": "tip", "gross": 1, "net": 1}]}`))
		}
	}, nil)

	page, err := client.FetchPage(context.Background(), account, domain.Cursor{})
	require.NoError(t, err)
	assert.Len(t, page.Events, 1)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []string{"rate_limited", "transient"}, obs.retries)
}

func TestClient_RateLimitWaitsDoubleUpToRetryCap(t *testing.T) {
	var (
		mu    sync.Mutex
		stamp []time.Time
	)
	client, obs := newTestClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		stamp = append(stamp, time.Now())
		n := len(stamp)
		mu.Unlock()
		if n <= 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"items": []}`))
	}, nil, Config{
		MaxRetries:     3,
		InitialBackoff: 20 * time.Millisecond,
		MaxBackoff:     time.Second,
	})

	_, err := client.FetchPage(context.Background(), account, domain.Cursor{})
	require.NoError(t, err)
	assert.Equal(t, []string{"rate_limited", "rate_limited", "rate_limited"}, obs.retries)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, stamp, 4)
	var gaps []time.Duration
	for i := 1; i < len(stamp); i++ {
		gaps = append(gaps, stamp[i].Sub(stamp[i-1]))
	}
	assert.GreaterOrEqual(t, gaps[0], 20*time.Millisecond)
	for i := 1; i < len(gaps); i++ {
		assert.Greater(t, gaps[i], gaps[i-1], "waits %v", gaps)
	}
}

func TestClient_NewExponentialDoubles(t *testing.T) {
	client, err := NewClient(Config{
		BaseURL:        "http://platform.test",
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     50 * time.Millisecond,
	}, &stubTokens{tokens: []string{"t"}}, zerolog.Nop())
	require.NoError(t, err)

	b := client.newExponential()
	var got []time.Duration
	for i := 0; i < 5; i++ {
		got = append(got, b.NextBackOff())
	}
	assert.Equal(t, []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		40 * time.Millisecond,
		50 * time.Millisecond,
		50 * time.Millisecond,
	}, got)
}

func TestClient_UnauthorizedIsNotRetried(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "forbidden", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &stubTokens{tokens: []string{"stale", "fresh"}}
			var calls atomic.Int32
			client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}, tokens)

			_, err := client.FetchCampaigns(context.Background(), account)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrAuthExpired)
			assert.Equal(t, int32(1), calls.Load())
			assert.Equal(t, 1, tokens.invalidated)
			assert.Empty(t, obs.retries)
			assert.Equal(t, []domain.ErrorKind{domain.ErrorKindAuthExpired}, obs.failures)
		})
	}
}

func TestClient_FetchEarningsTotalGrossBasis(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts/p-100/earnings", r.URL.Path)
		_, _ = w.Write([]byte(`{"net": "12.34", "gross": "15.00"}`))
	}, nil)

	total, err := client.FetchEarningsTotal(context.Background(), account, domain.RevenueBasisGross)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), total)
}

func TestClient_FetchCampaigns(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts/p-100/campaigns", r.URL.Path)
		_, _ = w.Write([]byte(`{"items": [
			{"campaign_id": "c1", "name": "Spring", "clicks": 40, "subscribers": 3},
			{"campaign_id": "", "name": "broken"}
		]}`))
	}, nil)

	stats, err := client.FetchCampaigns(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, domain.CampaignStat{AccountID: "acc-1", CampaignID: "c1", Name: "Spring", Clicks: 40, Subscribers: 3}, stats[0])
}

func TestClient_MalformedBodyIsTransient(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"items": [`))
	}, nil)

	_, err := client.FetchPage(context.Background(), account, domain.Cursor{})
	assert.ErrorIs(t, err, domain.ErrTransientNetwork)
	assert.Equal(t, int32(4), calls.Load())
}

func TestClient_CanceledContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchPage(ctx, account, domain.Cursor{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, 7*time.Second, parseRetryAfter("7"))
	assert.Equal(t, time.Duration(0), parseRetryAfter("soon"))

	future := time.Now().Add(time.Hour).UTC().Format(http.TimeFormat)
	assert.Greater(t, parseRetryAfter(future), 50*time.Minute)
}

func TestRetryAfterBackOff(t *testing.T) {
	b := &retryAfterBackOff{BackOff: constantBackOff(time.Millisecond), max: time.Second}

	b.hint = 10 * time.Second
	assert.Equal(t, time.Second, b.NextBackOff(), "hint is capped")
	assert.Equal(t, time.Millisecond, b.NextBackOff(), "hint is consumed")
}

type constantBackOff time.Duration

func (c constantBackOff) NextBackOff() time.Duration { return time.Duration(c) }
func (constantBackOff) Reset()                       {}

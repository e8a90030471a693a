package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

const maxErrorBody = 4 << 10

// Config configures the platform client.
type Config struct {
	BaseURL        string
	PageSize       int
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	// RPS paces requests across all accounts. Zero disables pacing.
	RPS        float64
	HTTPClient *http.Client
}

// Observer receives request-level observations.
type Observer interface {
	ObservePage()
	ObserveRetry(reason string)
	ObserveFetchFailure(kind domain.ErrorKind)
}

// TokenInvalidator is implemented by token providers that cache credentials.
type TokenInvalidator interface {
	Invalidate(ctx context.Context, accountID string) error
}

type noopObserver struct{}

func (noopObserver) ObservePage()                         {}
func (noopObserver) ObserveRetry(string)                  {}
func (noopObserver) ObserveFetchFailure(domain.ErrorKind) {}

// Client implements usecase.LedgerFetcher against the platform's REST API.
// 429 and transient failures are retried with exponential backoff. A 401 is
// never retried: the cached credential is dropped so the next run starts
// from a fresh token.
type Client struct {
	cfg      Config
	baseURL  *url.URL
	http     *http.Client
	tokens   usecase.TokenProvider
	limiter  *rate.Limiter
	observer Observer
	logger   zerolog.Logger
}

// NewClient creates a new Client.
func NewClient(cfg Config, tokens usecase.TokenProvider, logger zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid platform base URL %q", cfg.BaseURL)
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = time.Second
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 30 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Minute}
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	}

	return &Client{
		cfg:      cfg,
		baseURL:  base,
		http:     httpClient,
		tokens:   tokens,
		limiter:  limiter,
		observer: noopObserver{},
		logger:   logger.With().Str("component", "platform_client").Logger(),
	}, nil
}

// WithObserver sets the request observer.
func (c *Client) WithObserver(o Observer) *Client {
	if o != nil {
		c.observer = o
	}
	return c
}

// FetchPage returns one page of the account's ledger starting at position.
func (c *Client) FetchPage(ctx context.Context, account *domain.Account, position domain.Cursor) (*domain.LedgerPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.cfg.PageSize))
	if !position.Since.IsZero() {
		query.Set("since", position.Since.UTC().Format(time.RFC3339Nano))
	}
	if position.PageToken != "" {
		query.Set("page_token", position.PageToken)
	}

	var body transactionsResponse
	if err := c.get(ctx, account, "transactions", query, &body); err != nil {
		return nil, err
	}

	page := body.toPage(account.ID)
	if len(page.Rejected) > 0 {
		c.logger.Warn().
			Str("account_id", account.ID).
			Strs("rejected", page.Rejected).
			Msg("platform page contained malformed items")
	}

	c.observer.ObservePage()
	return page, nil
}

// FetchCampaigns returns the account's campaign link counts.
func (c *Client) FetchCampaigns(ctx context.Context, account *domain.Account) ([]domain.CampaignStat, error) {
	var body campaignsResponse
	if err := c.get(ctx, account, "campaigns", nil, &body); err != nil {
		return nil, err
	}
	return body.toStats(account.ID), nil
}

// FetchEarningsTotal returns the platform's own lifetime total for basis.
func (c *Client) FetchEarningsTotal(ctx context.Context, account *domain.Account, basis domain.RevenueBasis) (int64, error) {
	var body earningsResponse
	if err := c.get(ctx, account, "earnings", nil, &body); err != nil {
		return 0, err
	}

	amount := body.Net
	if basis == domain.RevenueBasisGross {
		amount = body.Gross
	}
	total, err := domain.ToMinorUnits(amount)
	if err != nil {
		return 0, &domain.UpstreamError{Kind: domain.ErrPermanentUpstream, Message: err.Error()}
	}
	return total, nil
}

// get issues a GET for an account resource and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, account *domain.Account, resource string, query url.Values, out any) error {
	endpoint := c.baseURL.JoinPath("v1", "accounts", account.PlatformUserID, resource)
	endpoint.RawQuery = query.Encode()

	policy := &retryAfterBackOff{
		BackOff: backoff.WithMaxRetries(c.newExponential(), uint64(c.cfg.MaxRetries)),
		max:     c.cfg.MaxBackoff,
	}

	operation := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		wait, err := c.attempt(ctx, account.ID, endpoint.String(), out)
		if err == nil {
			return nil
		}

		var ue *domain.UpstreamError
		if !errors.As(err, &ue) {
			return backoff.Permanent(err)
		}

		switch ue.Kind {
		case domain.ErrAuthExpired:
			c.invalidate(ctx, account.ID)
			return backoff.Permanent(err)
		case domain.ErrRateLimited:
			policy.hint = wait
			c.observer.ObserveRetry("rate_limited")
			return err
		case domain.ErrTransientNetwork:
			c.observer.ObserveRetry("transient")
			return err
		default:
			return backoff.Permanent(err)
		}
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Debug().Err(err).Str("account_id", account.ID).Dur("wait", wait).Msg("retrying platform request")
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify)
	if err != nil {
		c.observer.ObserveFetchFailure(domain.ClassifyError(err))
	}
	return err
}

// attempt performs one HTTP round trip. On a 429 it also returns the
// server's Retry-After hint.
func (c *Client) attempt(ctx context.Context, accountID, endpoint string, out any) (time.Duration, error) {
	token, err := c.tokens.Token(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("obtain platform token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, &domain.UpstreamError{Kind: domain.ErrTransientNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return parseRetryAfter(resp.Header.Get("Retry-After")), statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, &domain.UpstreamError{
			Kind:       domain.ErrTransientNetwork,
			StatusCode: resp.StatusCode,
			Message:    "decode response: " + err.Error(),
		}
	}
	return 0, nil
}

func (c *Client) invalidate(ctx context.Context, accountID string) {
	inv, ok := c.tokens.(TokenInvalidator)
	if !ok {
		return
	}
	if err := inv.Invalidate(ctx, accountID); err != nil {
		c.logger.Warn().Err(err).Str("account_id", accountID).Msg("token invalidation failed")
	}
}

// newExponential doubles the wait from InitialBackoff up to MaxBackoff.
// Jitter is off so consecutive waits never shrink.
func (c *Client) newExponential() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.InitialBackoff
	b.MaxInterval = c.cfg.MaxBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// statusError maps a non-200 response onto the upstream error taxonomy.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	ue := &domain.UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		ue.Kind = domain.ErrAuthExpired
	case resp.StatusCode == http.StatusTooManyRequests:
		ue.Kind = domain.ErrRateLimited
	case resp.StatusCode == http.StatusRequestTimeout, resp.StatusCode >= 500:
		ue.Kind = domain.ErrTransientNetwork
	default:
		ue.Kind = domain.ErrPermanentUpstream
	}
	return ue
}

// retryAfterBackOff stretches the next wait to honor a server Retry-After hint.
type retryAfterBackOff struct {
	backoff.BackOff
	hint time.Duration
	max  time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	hint := b.hint
	b.hint = 0
	if hint > b.max {
		hint = b.max
	}
	if hint > next {
		return hint
	}
	return next
}

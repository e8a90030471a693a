// Package tokenprovider obtains platform bearer credentials from the external
// token service and caches them.
package tokenprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/domain"
)

// Token is a bearer credential and its expiry.
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Valid reports whether the token is usable at now with skew to spare.
func (t *Token) Valid(now time.Time, skew time.Duration) bool {
	if t == nil || t.AccessToken == "" {
		return false
	}
	return t.ExpiresAt.IsZero() || now.Add(skew).Before(t.ExpiresAt)
}

// Source issues tokens for an account.
type Source interface {
	Issue(ctx context.Context, accountID string) (*Token, error)
}

// Client calls the token service. It does not refresh credentials itself;
// the service is expected to hand out a valid token on every call.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	maxRetries uint64
	logger     zerolog.Logger
}

// NewClient creates a new Client.
func NewClient(baseURL string, httpClient *http.Client, logger zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid token provider URL %q", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    base,
		http:       httpClient,
		maxRetries: 2,
		logger:     logger.With().Str("component", "token_provider").Logger(),
	}, nil
}

// Token implements usecase.TokenProvider.
func (c *Client) Token(ctx context.Context, accountID string) (string, error) {
	tok, err := c.Issue(ctx, accountID)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// Issue fetches a token for accountID. Server errors are retried briefly.
func (c *Client) Issue(ctx context.Context, accountID string) (*Token, error) {
	endpoint := c.baseURL.JoinPath("accounts", accountID, "token").String()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = 0

	var tok *Token
	operation := func() error {
		t, err := c.issueOnce(ctx, endpoint)
		if err != nil {
			if ctx.Err() != nil || !isRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		tok = t
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("issue token for %s: %w", accountID, err)
	}
	return tok, nil
}

func (c *Client) issueOnce(ctx context.Context, endpoint string) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &domain.UpstreamError{Kind: domain.ErrTransientNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		ue := &domain.UpstreamError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		switch {
		case resp.StatusCode >= 500, resp.StatusCode == http.StatusTooManyRequests:
			ue.Kind = domain.ErrTransientNetwork
		default:
			// the service could not produce a usable credential
			ue.Kind = domain.ErrAuthExpired
		}
		return nil, ue
	}

	var tok Token
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, &domain.UpstreamError{Kind: domain.ErrTransientNetwork, StatusCode: resp.StatusCode, Message: "decode token: " + err.Error()}
	}
	if tok.AccessToken == "" {
		return nil, &domain.UpstreamError{Kind: domain.ErrAuthExpired, StatusCode: resp.StatusCode, Message: "empty access token"}
	}
	return &tok, nil
}

func isRetryable(err error) bool {
	return domain.ClassifyError(err) == domain.ErrorKindTransientNetwork
}

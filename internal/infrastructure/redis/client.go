package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

// Option tunes NewClient.
type Option func(*clientOptions)

type clientOptions struct {
	connectRetry time.Duration
	poolSize     int
}

// WithConnectRetry keeps pinging for up to d before giving up, which lets
// the worker start alongside a Redis container that is still booting.
func WithConnectRetry(d time.Duration) Option {
	return func(o *clientOptions) { o.connectRetry = d }
}

// WithPoolSize overrides the pool size from the URL.
func WithPoolSize(n int) Option {
	return func(o *clientOptions) { o.poolSize = n }
}

// NewClient connects to redisURL and verifies the connection.
func NewClient(ctx context.Context, redisURL string, opts ...Option) (*redis.Client, error) {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	redisOpts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if o.poolSize > 0 {
		redisOpts.PoolSize = o.poolSize
	}
	client := redis.NewClient(redisOpts)

	var b backoff.BackOff = &backoff.StopBackOff{}
	if o.connectRetry > 0 {
		expo := backoff.NewExponentialBackOff()
		expo.InitialInterval = 100 * time.Millisecond
		expo.MaxElapsedTime = o.connectRetry
		b = expo
	}

	ping := func() error { return client.Ping(ctx).Err() }
	if err := backoff.Retry(ping, backoff.WithContext(b, ctx)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", redisOpts.Addr, err)
	}
	return client, nil
}

// Checker reports Redis reachability for readiness probes.
type Checker struct {
	client *redis.Client
}

// NewChecker creates a Checker for client.
func NewChecker(client *redis.Client) *Checker {
	return &Checker{client: client}
}

func (c *Checker) Name() string { return "redis" }

func (c *Checker) Check(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

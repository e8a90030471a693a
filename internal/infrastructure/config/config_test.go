package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/revsync/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageDriverPostgres, cfg.StorageDriver)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 10*time.Minute, cfg.HeartbeatInterval)
	assert.Equal(t, 24*time.Hour, cfg.ComprehensiveInterval)
	assert.Equal(t, "net", cfg.RevenueBasis)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, 3, cfg.PlatformMaxRetries)
	assert.Equal(t, time.Second, cfg.PlatformInitialBackoff)
	assert.Less(t, cfg.SyncRunTimeout, cfg.SyncLeaseStaleAfter)
	assert.Empty(t, cfg.CronSecret)
	assert.False(t, cfg.AuthEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	env := map[string]string{
		"STORAGE_DRIVER":       "memory",
		"REDIS_URL":            "redis://cache:6379/1",
		"DATABASE_TIMEOUT":     "45s",
		"JWT_SECRET":           "top-secret",
		"AUTH_ENABLED":         "true",
		"SYNC_CONCURRENCY":     "3",
		"REVENUE_BASIS":        "gross",
		"CRON_SECRET":          "tick",
		"CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, 45*time.Second, cfg.DatabaseTimeout)
	assert.True(t, cfg.AuthEnabled)
	assert.Equal(t, 3, cfg.SyncConcurrency)
	assert.Equal(t, "gross", cfg.RevenueBasis)
	assert.Equal(t, "tick", cfg.CronSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Rejects(t *testing.T) {
	tests := map[string]map[string]string{
		"malformed duration":     {"HTTP_READ_TIMEOUT": "soon"},
		"malformed integer":      {"SYNC_CONCURRENCY": "many"},
		"unknown driver":         {"STORAGE_DRIVER": "sqlite"},
		"unknown basis":          {"REVENUE_BASIS": "tips-only"},
		"lease shorter than run": {"SYNC_RUN_TIMEOUT": "20m", "SYNC_LEASE_STALE_AFTER": "10m"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			StorageDriver:         config.StorageDriverPostgres,
			SyncConcurrency:       1,
			PlatformPageSize:      10,
			RevenueBasis:          "net",
			SyncRunTimeout:        4 * time.Minute,
			SyncLeaseStaleAfter:   15 * time.Minute,
			SchedulerEnabled:      true,
			HeartbeatInterval:     time.Minute,
			ComprehensiveInterval: time.Hour,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "zero concurrency", mutate: func(c *config.Config) { c.SyncConcurrency = 0 }, wantErr: "SYNC_CONCURRENCY"},
		{name: "zero page size", mutate: func(c *config.Config) { c.PlatformPageSize = 0 }, wantErr: "PLATFORM_PAGE_SIZE"},
		{name: "auth without secret", mutate: func(c *config.Config) { c.AuthEnabled = true }, wantErr: "JWT_SECRET"},
		{name: "run timeout equal to lease staleness", mutate: func(c *config.Config) { c.SyncRunTimeout = c.SyncLeaseStaleAfter }, wantErr: "SYNC_LEASE_STALE_AFTER"},
		{name: "run timeout outlives lease", mutate: func(c *config.Config) { c.SyncRunTimeout = time.Hour }, wantErr: "SYNC_RUN_TIMEOUT (1h0m0s)"},
		{name: "zero run timeout", mutate: func(c *config.Config) { c.SyncRunTimeout = 0 }, wantErr: "SYNC_RUN_TIMEOUT must be positive"},
		{name: "scheduler without heartbeat", mutate: func(c *config.Config) { c.HeartbeatInterval = 0 }, wantErr: "HEARTBEAT_INTERVAL"},
		{name: "disabled scheduler ignores intervals", mutate: func(c *config.Config) {
			c.SchedulerEnabled = false
			c.HeartbeatInterval = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := &config.Config{StorageDriver: "sqlite", RevenueBasis: "net"}

	err := cfg.Validate()

	require.Error(t, err)
	assert.ErrorContains(t, err, "STORAGE_DRIVER")
	assert.ErrorContains(t, err, "SYNC_CONCURRENCY")
	assert.ErrorContains(t, err, "PLATFORM_PAGE_SIZE")
}

// Package app wires the engine's collaborators from configuration. The
// server, worker and CLI entry points all build the same object graph here.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/adapter/http/handler"
	"github.com/iho/revsync/internal/adapter/platform"
	"github.com/iho/revsync/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/revsync/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/revsync/internal/adapter/repository/redis"
	"github.com/iho/revsync/internal/adapter/tokenprovider"
	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/infrastructure/config"
	"github.com/iho/revsync/internal/infrastructure/metrics"
	"github.com/iho/revsync/internal/infrastructure/postgres"
	"github.com/iho/revsync/internal/infrastructure/redis"
	"github.com/iho/revsync/internal/usecase"
)

const runSummaryTTL = 7 * 24 * time.Hour

// App holds the wired use cases and the resources backing them.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Metrics *metrics.Metrics

	Accounts    usecase.AccountRepository
	Sync        *usecase.SyncUseCase
	Reconciler  *usecase.ReconciliationUseCase
	Diagnostics *usecase.DiagnosticsUseCase
	AccountUC   *usecase.AccountUseCase
	Webhooks    *usecase.WebhookUseCase

	Idempotency usecase.IdempotencyStore
	Tokens      *tokenprovider.Client
	Checkers    []handler.Checker

	closers []func()
}

type storage struct {
	txManager usecase.TransactionManager
	accounts  usecase.AccountRepository
	events    usecase.LedgerEventRepository
	cursors   usecase.CursorStore
	logs      usecase.ReconciliationLogRepository
	rollups   usecase.RollupRepository
	runs      usecase.RunSummaryStore
	cache     usecase.Cache
	idem      usecase.IdempotencyStore
	checkers  []handler.Checker
	closers   []func()
}

// New connects storage and builds every use case. Metrics are registered on reg.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger, reg prometheus.Registerer) (*App, error) {
	m := metrics.NewWithRegistry(reg)

	var (
		st  *storage
		err error
	)
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		st = newMemoryStorage()
		logger.Warn().Msg("using in-memory storage; state is lost on exit")
	default:
		st, err = newPostgresStorage(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
	}

	a := &App{
		Config:      cfg,
		Logger:      logger,
		Metrics:     m,
		Accounts:    st.accounts,
		Idempotency: st.idem,
		Checkers:    st.checkers,
		closers:     st.closers,
	}

	tokens, err := tokenprovider.NewClient(cfg.TokenProviderURL, &http.Client{Timeout: 15 * time.Second}, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Tokens = tokens
	cachedTokens := tokenprovider.NewCachingProvider(tokens, st.cache, cfg.TokenCacheTTL, logger).WithObserver(m)

	fetcher, err := platform.NewClient(platform.Config{
		BaseURL:        cfg.PlatformBaseURL,
		PageSize:       cfg.PlatformPageSize,
		MaxRetries:     cfg.PlatformMaxRetries,
		InitialBackoff: cfg.PlatformInitialBackoff,
		MaxBackoff:     cfg.PlatformMaxBackoff,
		RPS:            cfg.PlatformRPS,
	}, cachedTokens, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	fetcher.WithObserver(m)

	basis := domain.ParseRevenueBasis(cfg.RevenueBasis)
	idGen := postgresRepo.NewULIDGenerator()

	writer := usecase.NewIngestionUseCase(st.events, postgresRepo.NewRetrier(logger), logger).WithMetrics(m)
	a.Reconciler = usecase.NewReconciliationUseCase(st.txManager, st.accounts, st.events, st.logs, idGen, basis, logger).WithMetrics(m)
	a.Sync = usecase.NewSyncUseCase(
		st.accounts, st.cursors, fetcher, writer, a.Reconciler, st.rollups, st.runs, idGen,
		usecase.SyncConfig{
			Concurrency:           cfg.SyncConcurrency,
			RunTimeout:            cfg.SyncRunTimeout,
			PageTimeout:           cfg.PlatformPageTimeout,
			MaxPages:              cfg.PlatformMaxPages,
			LeaseStaleAfter:       cfg.SyncLeaseStaleAfter,
			ComprehensiveLookback: cfg.SyncComprehensiveWindow,
		},
		logger,
	).WithMetrics(m)
	a.Diagnostics = usecase.NewDiagnosticsUseCase(st.accounts, st.events, st.cursors, st.logs, fetcher, a.Reconciler, logger)
	a.AccountUC = usecase.NewAccountUseCase(st.accounts, st.events)
	a.Webhooks = usecase.NewWebhookUseCase(st.accounts, writer, a.Reconciler, logger)

	return a, nil
}

// Close releases storage connections in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func newMemoryStorage() *storage {
	events := memory.NewLedgerEventRepository()
	cache := memory.NewCache()
	return &storage{
		txManager: memory.NewTxManager(),
		accounts:  memory.NewAccountRepository(),
		events:    events,
		cursors:   memory.NewCursorStore(),
		logs:      memory.NewReconciliationLogRepository(),
		rollups:   memory.NewRollupRepository(events),
		runs:      memory.NewRunSummaryStore(),
		cache:     cache,
		idem:      cache,
	}
}

func newPostgresStorage(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*storage, error) {
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info().Msg("migrations applied")
	}

	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:     cfg.DatabaseURL,
		MaxConns:        cfg.DatabaseMaxConns,
		MinConns:        cfg.DatabaseMinConns,
		ConnectTimeout:  cfg.DatabaseTimeout,
		MaxConnLifetime: cfg.DatabaseMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL, redis.WithConnectRetry(cfg.DatabaseTimeout))
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info().Msg("connected to redis")

	return &storage{
		txManager: postgresRepo.NewTxManager(pool),
		accounts:  postgresRepo.NewAccountRepository(pool),
		events:    postgresRepo.NewLedgerEventRepository(pool),
		cursors:   postgresRepo.NewCursorStore(pool),
		logs:      postgresRepo.NewReconciliationLogRepository(pool),
		rollups:   postgresRepo.NewRollupRepository(pool),
		runs:      redisRepo.NewRunSummaryStore(redisClient, runSummaryTTL),
		cache:     redisRepo.NewCache(redisClient),
		idem:      redisRepo.NewIdempotencyStore(redisClient),
		checkers:  []handler.Checker{postgres.NewChecker(pool), redis.NewChecker(redisClient)},
		closers: []func(){
			pool.Close,
			func() { closeRedis(redisClient, logger) },
		},
	}, nil
}

func closeRedis(client *goredis.Client, logger zerolog.Logger) {
	if err := client.Close(); err != nil {
		logger.Warn().Err(err).Msg("close redis client")
	}
}

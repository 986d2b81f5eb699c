package cli

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"finance-calculator/config"
	"finance-calculator/repository"
	"finance-calculator/service"
)

// app is the dependency graph shared by subcommands.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	finance *service.FinanceService
	terms   *service.TermComparisonService
	redis   *repository.RedisCache
}

func newApp(cfg *config.Config, logger *zap.Logger) *app {
	a := &app{cfg: cfg, logger: logger}

	var cache repository.CacheRepository
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		a.redis = repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.GetCacheTTL())
		cache = a.redis
	default:
		cache = repository.NewMemoryCache(cfg.GetCacheTTL(), cfg.Cache.MaxEntries)
	}

	repo := repository.NewMemoryCalculationRepository(cfg.History.Limit)
	a.finance = service.NewFinanceService(repo, cache, logger)
	a.terms = service.NewTermComparisonService(a.finance, logger)
	return a
}

// checkCache reports whether the configured cache is reachable. Plans are
// still served without it.
func (a *app) checkCache(ctx context.Context) {
	if a.redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := a.redis.Ping(ctx); err != nil {
		a.logger.Warn("redis cache unreachable, continuing without it",
			zap.String("addr", a.cfg.Cache.RedisAddr), zap.Error(err))
	}
}

func (a *app) close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.logger != nil {
		// stderr cannot always be synced; that is not worth failing over
		_ = a.logger.Sync()
	}
	return errors.Join(errs...)
}

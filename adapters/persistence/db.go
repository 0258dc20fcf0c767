package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// NewPostgresPool connects to the hosted database. The store access key is
// used as the connection password so the URL can be shared without secrets.
func NewPostgresPool(ctx context.Context, cfg config.Config, log logger.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Store.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid store url: %w", err)
	}
	if key := cfg.StoreKey(); key != "" {
		poolCfg.ConnConfig.Password = key
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.", zap.String("host", poolCfg.ConnConfig.Host))
	return pool, nil
}

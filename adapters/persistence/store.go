package persistence

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/internal/domain/record"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// NewRecordClient picks the store implementation for cfg. The returned
// close function is always safe to call.
//
// Missing credentials are fatal in production. Elsewhere the server still
// boots on the placeholder client so the rest of the API can be exercised.
func NewRecordClient(ctx context.Context, cfg config.Config, log logger.Logger) (record.Client, func(), error) {
	noop := func() {}

	if cfg.Store.Driver == config.StoreDriverMemory {
		log.Warn("Using in-memory record store; data is lost on restart")
		return NewMemoryRecordClient(), noop, nil
	}

	if !cfg.HasStoreCredentials() {
		if cfg.IsProduction() {
			return nil, noop, errors.New("SUPABASE_DB_URL and SUPABASE_KEY (or SUPABASE_ANON_KEY) must be set in production")
		}
		log.Warn("Store credentials missing; every store call will fail",
			zap.Bool("has_url", cfg.Store.URL != ""),
			zap.Bool("has_key", cfg.StoreKey() != ""),
		)
		return NewPlaceholderRecordClient(), noop, nil
	}

	pool, err := NewPostgresPool(ctx, cfg, log)
	if err != nil {
		return nil, noop, err
	}
	return NewPostgresRecordClient(pool, log), pool.Close, nil
}

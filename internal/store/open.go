package store

import (
	"context"
	"fmt"

	"github.com/jonathan/smartjob/internal/config"
	"github.com/jonathan/smartjob/internal/db"
)

// Open returns the backend selected by cfg. The Postgres backend has its
// migrations applied before use.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case "", config.BackendMemory:
		return NewMemory(), nil

	case config.BackendRedis:
		return NewRedis(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})

	case config.BackendPostgres:
		if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
			return nil, err
		}
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewPostgres(database), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

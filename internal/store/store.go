// Package store opens the durable backend the response cache mirrors to.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/storage/redis/v3"

	"excuses/internal/cache"
	"excuses/internal/config"
	"excuses/internal/db"
)

var (
	ErrUnknownBackend = errors.New("unknown cache store")
	ErrMissingURL     = errors.New("cache store URL not configured")
)

// Backend is a cache.Store that owns a connection.
type Backend interface {
	cache.Store
	Close() error
}

// Open returns the backend selected by cfg.CacheStore. The memory backend
// has no durable store and returns nil, nil.
func Open(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.CacheStore {
	case "", config.StoreMemory:
		return nil, nil
	case config.StoreRedis:
		return OpenRedis(cfg.RedisURL)
	case config.StorePostgres:
		return OpenPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.CacheStore)
	}
}

// OpenRedis connects to Redis at url.
func OpenRedis(url string) (b Backend, err error) {
	if url == "" {
		return nil, fmt.Errorf("%w: REDIS_URL", ErrMissingURL)
	}
	// The driver panics when the initial ping fails.
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("failed to connect to redis: %v", r)
		}
	}()
	return redis.New(redis.Config{URL: url}), nil
}

// OpenPostgres connects to Postgres and applies migrations.
func OpenPostgres(ctx context.Context, url string) (Backend, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingURL)
	}
	database, err := db.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(url); err != nil {
		database.Close()
		return nil, err
	}
	return db.NewStorage(database, 0), nil
}

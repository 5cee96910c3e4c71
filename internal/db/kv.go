package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// GetValue returns the value stored under key. Expired rows count as missing.
func (d *DB) GetValue(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	var value []byte
	err := d.Pool.QueryRow(ctx, `
		SELECT value FROM kv_store
		WHERE key = $1 AND (expires_at IS NULL OR expires_at > NOW())
	`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// SetValue upserts key. A zero ttl never expires.
func (d *DB) SetValue(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}

	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	_, err := d.Pool.Exec(ctx, `
		INSERT INTO kv_store (key, value, expires_at, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = NOW()
	`, key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// DeleteValue removes key. Deleting a missing key is not an error.
func (d *DB) DeleteValue(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if _, err := d.Pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Storage adapts DB to the byte-oriented key-value interface used by the
// response cache. Get returns nil, nil for a missing key.
type Storage struct {
	db      *DB
	timeout time.Duration
}

// NewStorage wraps d. Each call is bounded by timeout.
func NewStorage(d *DB, timeout time.Duration) *Storage {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Storage{db: d, timeout: timeout}
}

// Get returns the value for key, or nil if it does not exist.
func (s *Storage) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	value, err := s.db.GetValue(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	return value, err
}

// Set stores val under key for exp, or forever when exp is zero.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.db.SetValue(ctx, key, val, exp)
}

// Delete removes key.
func (s *Storage) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.db.DeleteValue(ctx, key)
}

// Close closes the underlying pool.
func (s *Storage) Close() error {
	s.db.Close()
	return nil
}

package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/hpungsan/caltrack/internal/errors"
)

// KV is a byte-valued key-value store backed by the kv table.
type KV struct {
	db *sql.DB
}

// NewKV wraps an initialized database.
func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// Get returns the value stored under key. found is false when the key is absent.
func (s *KV) Get(ctx context.Context, key string) (value []byte, found bool, err error) {
	err = s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.NewInternal(err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *KV) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().Unix()); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *KV) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// UpdatedAt returns the Unix time key was last written, or 0 if absent.
func (s *KV) UpdatedAt(ctx context.Context, key string) (int64, error) {
	var ts int64
	err := s.db.QueryRowContext(ctx, `SELECT updated_at FROM kv WHERE key = ?`, key).Scan(&ts)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return ts, nil
}

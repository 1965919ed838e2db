package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// The persistent store is a key-value document table holding whole JSON
// blobs. There are no partial updates: every write replaces the value for its
// key (last-writer-wins, no merge), matching the consistency model the rest
// of the system assumes.

// EnsureSchema creates the kv table if it does not exist yet. Called once at
// startup before any repository is used.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const query = `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure kv_store schema: %w", err)
	}
	return nil
}

// kvGet returns the raw JSON value for key, or (nil, nil) when absent.
func kvGet(ctx context.Context, db *sql.DB, key string) ([]byte, error) {
	const query = `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	err := db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read kv key %q: %w", key, err)
	}
	return value, nil
}

func kvSet(ctx context.Context, db *sql.DB, key string, value []byte) error {
	const query = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`

	if _, err := db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write kv key %q: %w", key, err)
	}
	return nil
}

func kvDelete(ctx context.Context, db *sql.DB, key string) error {
	const query = `DELETE FROM kv_store WHERE key = $1`

	if _, err := db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete kv key %q: %w", key, err)
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

const lastChangedKey = "last-update"

// SyncRepository holds the shared "last-changed" marker polling clients
// compare against their own timestamp.
type SyncRepository interface {
	// LastChanged returns the marker in unix milliseconds, or 0 when no
	// change has ever been recorded.
	LastChanged(ctx context.Context) (int64, error)
	SetLastChanged(ctx context.Context, timestamp int64) error
}

type postgresSyncRepository struct {
	db *sql.DB
}

func NewPostgresSyncRepository(db *sql.DB) SyncRepository {
	return &postgresSyncRepository{db: db}
}

func (r *postgresSyncRepository) LastChanged(ctx context.Context) (int64, error) {
	raw, err := kvGet(ctx, r.db, lastChangedKey)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}

	var timestamp int64
	if err := json.Unmarshal(raw, &timestamp); err != nil {
		return 0, fmt.Errorf("failed to decode last-changed marker: %w", err)
	}
	return timestamp, nil
}

func (r *postgresSyncRepository) SetLastChanged(ctx context.Context, timestamp int64) error {
	raw, err := json.Marshal(timestamp)
	if err != nil {
		return fmt.Errorf("failed to encode last-changed marker: %w", err)
	}
	return kvSet(ctx, r.db, lastChangedKey, raw)
}

package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/cobrasfc/matchday/models"
)

const stateKey = "tournament:state"

type StateRepository interface {
	// Get returns the persisted tournament state, or (nil, nil) when none
	// has been saved yet (fresh deployment or after a reset).
	Get(ctx context.Context) (*models.TournamentState, error)
	Save(ctx context.Context, state *models.TournamentState) error
	Clear(ctx context.Context) error
}

type postgresStateRepository struct {
	db *sql.DB
}

func NewPostgresStateRepository(db *sql.DB) StateRepository {
	return &postgresStateRepository{db: db}
}

func (r *postgresStateRepository) Get(ctx context.Context) (*models.TournamentState, error) {
	raw, err := kvGet(ctx, r.db, stateKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var state models.TournamentState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode tournament state: %w", err)
	}
	return &state, nil
}

func (r *postgresStateRepository) Save(ctx context.Context, state *models.TournamentState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode tournament state: %w", err)
	}
	return kvSet(ctx, r.db, stateKey, raw)
}

func (r *postgresStateRepository) Clear(ctx context.Context) error {
	return kvDelete(ctx, r.db, stateKey)
}

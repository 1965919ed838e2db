package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cobrasfc/matchday/models"
	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

const teamsKey = "teams"

// RosterRepository serves the team roster. Reads prefer an admin-saved
// override in the store and fall back to the YAML roster file shipped with
// the deployment; writes always go to the store, leaving the file untouched.
type RosterRepository interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	SaveTeams(ctx context.Context, teams []models.Team) error
}

type postgresRosterRepository struct {
	db         *sql.DB
	rosterPath string
}

func NewPostgresRosterRepository(db *sql.DB, rosterPath string) RosterRepository {
	return &postgresRosterRepository{db: db, rosterPath: rosterPath}
}

func (r *postgresRosterRepository) ListTeams(ctx context.Context) ([]models.Team, error) {
	raw, err := kvGet(ctx, r.db, teamsKey)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		var teams []models.Team
		if err := json.Unmarshal(raw, &teams); err != nil {
			return nil, fmt.Errorf("failed to decode stored teams: %w", err)
		}
		return teams, nil
	}

	data, err := os.ReadFile(r.rosterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", r.rosterPath, err)
	}
	return parseRoster(data)
}

func (r *postgresRosterRepository) SaveTeams(ctx context.Context, teams []models.Team) error {
	normalizeTeamIDs(teams)
	raw, err := json.Marshal(teams)
	if err != nil {
		return fmt.Errorf("failed to encode teams: %w", err)
	}
	return kvSet(ctx, r.db, teamsKey, raw)
}

// parseRoster decodes the YAML roster file. Entries may omit the id; it is
// then derived from the display name so roster edits don't have to keep the
// two in sync by hand.
func parseRoster(data []byte) ([]models.Team, error) {
	var doc struct {
		Teams []models.Team `yaml:"teams"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	for i := range doc.Teams {
		if doc.Teams[i].Name == "" {
			return nil, fmt.Errorf("roster entry %d has no name", i)
		}
	}
	normalizeTeamIDs(doc.Teams)
	return doc.Teams, nil
}

func normalizeTeamIDs(teams []models.Team) {
	for i := range teams {
		if teams[i].ID == "" {
			teams[i].ID = slug.Make(teams[i].Name)
		}
	}
}

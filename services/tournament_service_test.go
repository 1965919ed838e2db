package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/cobrasfc/matchday/engine"
	"github.com/cobrasfc/matchday/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStateRepository struct {
	state *models.TournamentState
	saves int
}

func (r *fakeStateRepository) Get(ctx context.Context) (*models.TournamentState, error) {
	if r.state == nil {
		return nil, nil
	}
	clone := *r.state
	clone.Matches = append([]models.Match(nil), r.state.Matches...)
	return &clone, nil
}

func (r *fakeStateRepository) Save(ctx context.Context, state *models.TournamentState) error {
	clone := *state
	clone.Matches = append([]models.Match(nil), state.Matches...)
	r.state = &clone
	r.saves++
	return nil
}

func (r *fakeStateRepository) Clear(ctx context.Context) error {
	r.state = nil
	return nil
}

type fakeRosterRepository struct {
	teams []models.Team
}

func (r *fakeRosterRepository) ListTeams(ctx context.Context) ([]models.Team, error) {
	return r.teams, nil
}

func (r *fakeRosterRepository) SaveTeams(ctx context.Context, teams []models.Team) error {
	r.teams = teams
	return nil
}

type fakeSyncRepository struct {
	timestamp int64
}

func (r *fakeSyncRepository) LastChanged(ctx context.Context) (int64, error) {
	return r.timestamp, nil
}

func (r *fakeSyncRepository) SetLastChanged(ctx context.Context, timestamp int64) error {
	r.timestamp = timestamp
	return nil
}

func testRoster() []models.Team {
	ids := []string{"argentina", "brazil", "england", "france", "germany", "portugal"}
	teams := make([]models.Team, len(ids))
	for i, id := range ids {
		teams[i] = models.Team{ID: id, Name: id}
	}
	return teams
}

func newTestService() (TournamentService, *fakeStateRepository, *fakeSyncRepository) {
	stateRepo := &fakeStateRepository{}
	syncRepo := &fakeSyncRepository{}
	rosterRepo := &fakeRosterRepository{teams: testRoster()}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := engine.NewHub(logger)

	svc := NewTournamentService(stateRepo, rosterRepo, NewSyncService(syncRepo), hub, logger)
	return svc, stateRepo, syncRepo
}

func TestListMatchesGeneratesScheduleWhenEmpty(t *testing.T) {
	svc, stateRepo, _ := newTestService()

	matches, err := svc.ListMatches(context.Background())
	require.NoError(t, err)
	assert.Len(t, matches, 12)

	require.NotNil(t, stateRepo.state, "generated schedule must be persisted")
	assert.Len(t, stateRepo.state.Matches, 12)
	assert.Positive(t, stateRepo.state.LastUpdated)

	// A second read serves the stored schedule without re-saving.
	saves := stateRepo.saves
	again, err := svc.ListMatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, matches, again)
	assert.Equal(t, saves, stateRepo.saves)
}

func TestSubmitScoreRecordsResult(t *testing.T) {
	svc, stateRepo, syncRepo := newTestService()

	match, err := svc.SubmitScore(context.Background(), "r1-f1", SubmitScoreInput{GoalsA: 2, GoalsB: 1})
	require.NoError(t, err)

	assert.True(t, match.Completed)
	require.NotNil(t, match.GoalsA)
	require.NotNil(t, match.GoalsB)
	assert.Equal(t, 2, *match.GoalsA)
	assert.Equal(t, 1, *match.GoalsB)

	assert.Positive(t, syncRepo.timestamp, "mutation must bump the sync marker")
	assert.Equal(t, stateRepo.state.LastUpdated, syncRepo.timestamp)
}

func TestSubmitScoreUnknownMatch(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SubmitScore(context.Background(), "r9-f9", SubmitScoreInput{GoalsA: 1, GoalsB: 0})
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestSubmitScoreRejectsNegativeGoals(t *testing.T) {
	svc, stateRepo, _ := newTestService()

	_, err := svc.SubmitScore(context.Background(), "r1-f1", SubmitScoreInput{GoalsA: -1, GoalsB: 0})
	assert.ErrorIs(t, err, ErrInvalidScore)
	assert.Nil(t, stateRepo.state, "nothing should be persisted")
}

func TestSubmitScoreTriggersProgression(t *testing.T) {
	svc, stateRepo, _ := newTestService()

	scores := map[string][2]int{
		"r1-f1": {3, 0},
		"r1-f2": {2, 0},
		"r1-f3": {1, 0},
		"r2-f1": {2, 0},
		"r2-f2": {2, 0},
		"r2-f3": {1, 0},
		"r3-f1": {1, 0},
		"r3-f2": {1, 0},
		"r3-f3": {1, 0},
	}
	for id, score := range scores {
		_, err := svc.SubmitScore(context.Background(), id, SubmitScoreInput{GoalsA: score[0], GoalsB: score[1]})
		require.NoError(t, err)
	}

	for _, m := range stateRepo.state.Matches {
		if m.Round != models.RoundSemiFinals {
			continue
		}
		assert.Truef(t, m.TeamA.Determined(), "semi %s should be seeded", m.ID)
		assert.Truef(t, m.TeamB.Determined(), "semi %s should be seeded", m.ID)
	}
}

func TestStandingsOnEmptyStore(t *testing.T) {
	svc, _, _ := newTestService()

	rows, err := svc.Standings(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 6)
	for _, row := range rows {
		assert.Zero(t, row.Played)
	}
}

func TestStandingsReflectSubmittedScores(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SubmitScore(context.Background(), "r1-f1", SubmitScoreInput{GoalsA: 4, GoalsB: 0})
	require.NoError(t, err)

	rows, err := svc.Standings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "argentina", rows[0].TeamID)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, 4, rows[0].GoalsFor)
}

func TestResetDiscardsState(t *testing.T) {
	svc, stateRepo, syncRepo := newTestService()

	_, err := svc.SubmitScore(context.Background(), "r1-f1", SubmitScoreInput{GoalsA: 1, GoalsB: 0})
	require.NoError(t, err)
	before := syncRepo.timestamp

	require.NoError(t, svc.Reset(context.Background()))
	assert.Nil(t, stateRepo.state)
	assert.GreaterOrEqual(t, syncRepo.timestamp, before)

	// The next read regenerates a clean schedule.
	matches, err := svc.ListMatches(context.Background())
	require.NoError(t, err)
	for _, m := range matches {
		assert.False(t, m.Completed)
	}
}

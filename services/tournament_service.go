package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cobrasfc/matchday/engine"
	"github.com/cobrasfc/matchday/models"
	"github.com/cobrasfc/matchday/repositories"
	"golang.org/x/sync/errgroup"
)

type SubmitScoreInput struct {
	GoalsA int `json:"goalsA"`
	GoalsB int `json:"goalsB"`
}

// TournamentService owns the read-modify-write cycle around the pure engine.
// Each call loads the state blob, works on it as an exclusive copy and writes
// it back wholesale; two concurrent writers race and the later write wins.
type TournamentService interface {
	// ListMatches returns the full match collection, generating and saving a
	// fresh schedule when the store holds none.
	ListMatches(ctx context.Context) ([]models.Match, error)

	// SubmitScore records a final score for one match and re-runs playoff
	// progression. Goal counts and the completed flag are set together.
	SubmitScore(ctx context.Context, matchID string, input SubmitScoreInput) (*models.Match, error)

	// Standings computes the group-stage table from the current state.
	Standings(ctx context.Context) ([]models.StandingsRow, error)

	// Reset discards the whole tournament state. The next read regenerates
	// a fresh schedule.
	Reset(ctx context.Context) error
}

type tournamentService struct {
	stateRepo  repositories.StateRepository
	rosterRepo repositories.RosterRepository
	syncSvc    SyncService
	hub        *engine.Hub
	logger     *slog.Logger
}

func NewTournamentService(
	stateRepo repositories.StateRepository,
	rosterRepo repositories.RosterRepository,
	syncSvc SyncService,
	hub *engine.Hub,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		stateRepo:  stateRepo,
		rosterRepo: rosterRepo,
		syncSvc:    syncSvc,
		hub:        hub,
		logger:     logger,
	}
}

// loadOrGenerate fetches the current state, assembling and persisting a fresh
// schedule when the store is empty (first boot or after a reset).
func (s *tournamentService) loadOrGenerate(ctx context.Context) (*models.TournamentState, error) {
	state, err := s.stateRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if state != nil && len(state.Matches) > 0 {
		return state, nil
	}

	state = &models.TournamentState{
		Matches:     engine.GenerateSchedule(),
		LastUpdated: time.Now().UnixMilli(),
	}
	if err := s.stateRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save generated schedule: %w", err)
	}
	s.logger.Info("generated fresh tournament schedule", slog.Int("matches", len(state.Matches)))
	return state, nil
}

func (s *tournamentService) ListMatches(ctx context.Context) ([]models.Match, error) {
	state, err := s.loadOrGenerate(ctx)
	if err != nil {
		return nil, err
	}

	// Progression is re-evaluated on every read as well as every write, so a
	// state written by an older build (or a racing writer) still converges.
	teams, err := s.rosterRepo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	progressed := engine.ApplyProgression(state.Matches, teams)
	if slotsChanged(state.Matches, progressed) {
		state.Matches = progressed
		state.LastUpdated = time.Now().UnixMilli()
		if err := s.stateRepo.Save(ctx, state); err != nil {
			return nil, fmt.Errorf("failed to save progressed state: %w", err)
		}
	}

	return state.Matches, nil
}

func (s *tournamentService) SubmitScore(ctx context.Context, matchID string, input SubmitScoreInput) (*models.Match, error) {
	if input.GoalsA < 0 || input.GoalsB < 0 {
		return nil, ErrInvalidScore
	}

	state, err := s.loadOrGenerate(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range state.Matches {
		if state.Matches[i].ID == matchID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrMatchNotFound
	}

	goalsA, goalsB := input.GoalsA, input.GoalsB
	state.Matches[idx].GoalsA = &goalsA
	state.Matches[idx].GoalsB = &goalsB
	state.Matches[idx].Completed = true

	teams, err := s.rosterRepo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	state.Matches = engine.ApplyProgression(state.Matches, teams)

	now := time.Now().UnixMilli()
	state.LastUpdated = now
	if err := s.stateRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save score for match %s: %w", matchID, err)
	}

	if err := s.syncSvc.MarkChanged(ctx, now); err != nil {
		// The state itself is saved; polling clients just pick it up a cycle
		// late. Not worth failing the request over.
		s.logger.Error("failed to update last-changed marker", slog.Any("error", err))
	}
	s.hub.BroadcastEvent(engine.UpdateEvent{Type: engine.EventMatchesUpdated, Timestamp: now})

	s.logger.Info("score recorded",
		slog.String("match", matchID),
		slog.Int("goalsA", goalsA),
		slog.Int("goalsB", goalsB),
	)

	updated := state.Matches[idx]
	return &updated, nil
}

func (s *tournamentService) Standings(ctx context.Context) ([]models.StandingsRow, error) {
	var (
		state *models.TournamentState
		teams []models.Team
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		state, err = s.stateRepo.Get(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = s.rosterRepo.ListTeams(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var matches []models.Match
	if state != nil {
		matches = state.Matches
	}
	return engine.CalculateStandings(matches, teams), nil
}

func (s *tournamentService) Reset(ctx context.Context) error {
	if err := s.stateRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear tournament state: %w", err)
	}

	now := time.Now().UnixMilli()
	if err := s.syncSvc.MarkChanged(ctx, now); err != nil {
		s.logger.Error("failed to update last-changed marker after reset", slog.Any("error", err))
	}
	s.hub.BroadcastEvent(engine.UpdateEvent{Type: engine.EventMatchesUpdated, Timestamp: now})

	s.logger.Info("tournament state reset")
	return nil
}

// slotsChanged reports whether progression filled in any playoff slot.
// Progression never touches anything but the two team references.
func slotsChanged(before, after []models.Match) bool {
	if len(before) != len(after) {
		return true
	}
	for i := range before {
		if before[i].TeamA != after[i].TeamA || before[i].TeamB != after[i].TeamB {
			return true
		}
	}
	return false
}

package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cobrasfc/matchday/engine"
	"github.com/cobrasfc/matchday/models"
	"github.com/cobrasfc/matchday/repositories"
	"github.com/cobrasfc/matchday/storage"
)

// TeamService serves the roster and applies administrative edits. Teams are
// never created or destroyed during play; edits are renames, player changes
// and crest uploads.
type TeamService interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeams(ctx context.Context, teams []models.Team) ([]models.Team, error)
	UploadCrest(ctx context.Context, teamID string, contentType string, file io.Reader) (*models.Team, error)
}

type teamService struct {
	rosterRepo repositories.RosterRepository
	syncSvc    SyncService
	uploader   storage.FileUploader
	hub        *engine.Hub
	logger     *slog.Logger
}

func NewTeamService(
	rosterRepo repositories.RosterRepository,
	syncSvc SyncService,
	uploader storage.FileUploader,
	hub *engine.Hub,
	logger *slog.Logger,
) TeamService {
	return &teamService{
		rosterRepo: rosterRepo,
		syncSvc:    syncSvc,
		uploader:   uploader,
		hub:        hub,
		logger:     logger,
	}
}

func (s *teamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.rosterRepo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		s.fillCrestURL(&teams[i])
	}
	return teams, nil
}

func (s *teamService) UpdateTeams(ctx context.Context, teams []models.Team) ([]models.Team, error) {
	if len(teams) == 0 {
		return nil, ErrEmptyRoster
	}
	for _, t := range teams {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: every team needs a name", ErrEmptyRoster)
		}
	}

	if err := s.rosterRepo.SaveTeams(ctx, teams); err != nil {
		return nil, err
	}
	s.markTeamsChanged(ctx)
	s.logger.Info("roster updated", slog.Int("teams", len(teams)))

	return s.ListTeams(ctx)
}

func (s *teamService) UploadCrest(ctx context.Context, teamID string, contentType string, file io.Reader) (*models.Team, error) {
	teams, err := s.rosterRepo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range teams {
		if teams[i].ID == teamID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrTeamNotFound
	}

	key := fmt.Sprintf("crests/%s", teamID)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload crest for team %s: %w", teamID, err)
	}

	teams[idx].CrestKey = &result.Key
	if err := s.rosterRepo.SaveTeams(ctx, teams); err != nil {
		return nil, err
	}
	s.markTeamsChanged(ctx)
	s.logger.Info("crest uploaded", slog.String("team", teamID), slog.String("key", result.Key))

	s.fillCrestURL(&teams[idx])
	team := teams[idx]
	return &team, nil
}

func (s *teamService) fillCrestURL(team *models.Team) {
	if team.CrestKey == nil || *team.CrestKey == "" {
		return
	}
	url := s.uploader.GetPublicURL(*team.CrestKey)
	if url != "" {
		team.CrestURL = &url
	}
}

func (s *teamService) markTeamsChanged(ctx context.Context) {
	now := time.Now().UnixMilli()
	if err := s.syncSvc.MarkChanged(ctx, now); err != nil {
		s.logger.Error("failed to update last-changed marker", slog.Any("error", err))
	}
	s.hub.BroadcastEvent(engine.UpdateEvent{Type: engine.EventTeamsUpdated, Timestamp: now})
}

package services

import (
	"context"

	"github.com/cobrasfc/matchday/repositories"
)

// SyncService exposes the shared last-changed marker. Clients poll
// LastChanged and refetch when it moves past their own timestamp; every
// mutating operation calls MarkChanged.
type SyncService interface {
	LastChanged(ctx context.Context) (int64, error)
	MarkChanged(ctx context.Context, timestamp int64) error
}

type syncService struct {
	syncRepo repositories.SyncRepository
}

func NewSyncService(syncRepo repositories.SyncRepository) SyncService {
	return &syncService{syncRepo: syncRepo}
}

func (s *syncService) LastChanged(ctx context.Context) (int64, error) {
	return s.syncRepo.LastChanged(ctx)
}

func (s *syncService) MarkChanged(ctx context.Context, timestamp int64) error {
	return s.syncRepo.SetLastChanged(ctx, timestamp)
}

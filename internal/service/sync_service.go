// internal/service/sync_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/repository"
)

// StatusUpdate is one row of the national shortage feed.
type StatusUpdate struct {
	CISCode string
	Status  string
}

// StatusFeed is the scraper/sync collaborator. Its implementation lives
// outside this service.
type StatusFeed interface {
	Fetch(ctx context.Context) ([]StatusUpdate, error)
}

// SyncService applies the feed to the medications table. Triggered by
// the cron endpoint, so it runs under the long job deadline, not the
// interactive one.
type SyncService struct {
	Feed           StatusFeed
	MedicationRepo repository.MedicationRepositoryInterface
	Logger         *zap.Logger
}

type SyncResult struct {
	Updated   int `json:"updated"`
	Unmatched int `json:"unmatched"`
}

func (s *SyncService) Run(ctx context.Context) (*SyncResult, error) {
	updates, err := s.Feed.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	res := &SyncResult{}
	for _, u := range updates {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}
		matched, err := s.MedicationRepo.UpdateStatusByCIS(u.CISCode, u.Status)
		if err != nil {
			return res, err
		}
		if matched {
			res.Updated++
		} else {
			res.Unmatched++
		}
	}
	s.Logger.Info("medication status sync complete",
		zap.Int("updated", res.Updated), zap.Int("unmatched", res.Unmatched))
	return res, nil
}

// NoopFeed stands in when no scraper endpoint is configured.
type NoopFeed struct{}

func (NoopFeed) Fetch(ctx context.Context) ([]StatusUpdate, error) {
	return nil, nil
}

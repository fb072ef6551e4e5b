package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/repository"
)

// SnapshotService keeps the stored portfolio snapshot current. A snapshot
// is a full aggregation result reduced to its headline figures; replacing
// it is atomic, so overview readers never observe a partial update.
type SnapshotService struct {
	portfolioService *PortfolioService
	snapshotRepo     *repository.SnapshotRepository
	logger           *zap.Logger
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(portfolioService *PortfolioService, snapshotRepo *repository.SnapshotRepository, logger *zap.Logger) *SnapshotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotService{
		portfolioService: portfolioService,
		snapshotRepo:     snapshotRepo,
		logger:           logger,
	}
}

// Refresh recomputes the portfolio aggregate and replaces the stored
// snapshot. With no active herds the existing snapshot is left in place and
// Refresh reports false.
func (s *SnapshotService) Refresh(ctx context.Context) (bool, error) {
	summary, err := s.portfolioService.GetPortfolioSummary(ctx)
	if err != nil {
		return false, err
	}
	if summary == nil {
		return false, nil
	}

	snapshot := model.PortfolioSnapshot{
		ID:                 uuid.NewString(),
		TotalNetWorth:      summary.TotalNetWorth,
		TotalPhysicalValue: summary.TotalPhysicalValue,
		TotalHeadCount:     summary.TotalHeadCount,
		HerdCount:          summary.HerdCount + summary.IndividualCount,
		CalculatedAt:       time.Now().UTC(),
	}

	if err := s.snapshotRepo.ReplaceSnapshot(snapshot); err != nil {
		return false, err
	}

	s.logger.Info("portfolio snapshot refreshed",
		zap.Float64("totalNetWorth", snapshot.TotalNetWorth),
		zap.Int("herdCount", snapshot.HerdCount),
	)

	return true, nil
}

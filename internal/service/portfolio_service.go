package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/apperrors"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/repository"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/valuation"
)

// PortfolioService computes portfolio-level valuations. It loads herd
// records and the latest price table, hands them to the valuation engine,
// and serves the results to the API layer.
//
// Data Loading Strategy:
// Prices are fetched once per aggregation pass and grouped by category
// before any herd is valued, so resolution is O(1) per herd instead of a
// query per herd.
type PortfolioService struct {
	herdRepo     *repository.HerdRepository
	priceRepo    *repository.PriceRepository
	snapshotRepo *repository.SnapshotRepository
	engine       *valuation.Engine
	logger       *zap.Logger
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	herdRepo *repository.HerdRepository,
	priceRepo *repository.PriceRepository,
	snapshotRepo *repository.SnapshotRepository,
	engine *valuation.Engine,
	logger *zap.Logger,
) *PortfolioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortfolioService{
		herdRepo:     herdRepo,
		priceRepo:    priceRepo,
		snapshotRepo: snapshotRepo,
		engine:       engine,
		logger:       logger,
	}
}

// GetPortfolioSummary runs the full valuation pass over all active herds.
// Returns (nil, nil) when there are no active herds.
func (s *PortfolioService) GetPortfolioSummary(ctx context.Context) (*model.PortfolioSummary, error) {
	herds, err := s.herdRepo.GetHerds(model.HerdFilter{IncludeSold: false})
	if err != nil {
		return nil, err
	}

	prices, err := s.priceRepo.GetLatestPrices()
	if err != nil {
		return nil, err
	}

	table := valuation.NewPriceTable(prices, s.engine.Assumptions().FallbackPricePerKg)
	return s.engine.Aggregate(ctx, herds, table, time.Now().UTC())
}

// GetHerdValuation values a single herd for detail views, using the same
// price table an aggregation pass would.
func (s *PortfolioService) GetHerdValuation(herdID string) (model.HerdValuation, error) {
	herd, err := s.herdRepo.GetHerdOnID(herdID)
	if err != nil {
		return model.HerdValuation{}, err
	}

	prices, err := s.priceRepo.GetLatestPrices()
	if err != nil {
		return model.HerdValuation{}, err
	}

	table := valuation.NewPriceTable(prices, s.engine.Assumptions().FallbackPricePerKg)
	pricePerKg, source := table.Resolve(herd.Category)

	return s.engine.ValueHerd(herd, pricePerKg, source, time.Now().UTC()), nil
}

// Overview is the fast two-phase portfolio view: the latest stored snapshot
// when one exists, otherwise a rough estimate from flat assumptions. Exactly
// one of Snapshot and Estimate is set; both are nil when there is no data.
type Overview struct {
	Snapshot *model.PortfolioSnapshot `json:"snapshot,omitempty"`
	Estimate *model.RoughSummary      `json:"estimate,omitempty"`
}

// GetOverview serves the portfolio overview without running a valuation
// pass. The precise summary endpoint remains the authoritative figure; this
// path exists so callers can render something immediately.
func (s *PortfolioService) GetOverview() (Overview, error) {
	snapshot, err := s.snapshotRepo.GetLatestSnapshot()
	if err == nil {
		return Overview{Snapshot: &snapshot}, nil
	}
	if !errors.Is(err, apperrors.ErrSnapshotNotFound) {
		return Overview{}, err
	}

	// No snapshot yet: fall back to the quick estimate.
	herds, err := s.herdRepo.GetHerds(model.HerdFilter{IncludeSold: false})
	if err != nil {
		return Overview{}, err
	}

	return Overview{Estimate: s.engine.QuickEstimate(herds, time.Now().UTC())}, nil
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/request"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/marketfeed"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/repository"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/validation"
)

// PriceService handles market price operations: serving the latest price
// table, recording manual quotes, and pulling saleyard reports from the
// external feed.
type PriceService struct {
	priceRepo *repository.PriceRepository
	feed      marketfeed.Client
	logger    *zap.Logger
}

// NewPriceService creates a new PriceService. The feed client may be nil
// when no market feed is configured; Refresh then reports no new quotes.
func NewPriceService(priceRepo *repository.PriceRepository, feed marketfeed.Client, logger *zap.Logger) *PriceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PriceService{priceRepo: priceRepo, feed: feed, logger: logger}
}

// GetLatestPrices returns the most recent quote per category.
func (s *PriceService) GetLatestPrices() ([]model.MarketPrice, error) {
	return s.priceRepo.GetLatestPrices()
}

// GetPricesOnCategory returns a category's quotes within a date range.
func (s *PriceService) GetPricesOnCategory(category string, from, to time.Time) ([]model.MarketPrice, error) {
	return s.priceRepo.GetPricesOnCategory(category, from, to)
}

// CreatePrice validates and stores a manually entered quote.
func (s *PriceService) CreatePrice(req request.CreatePriceRequest) (model.MarketPrice, error) {
	if err := validation.ValidateCreatePrice(req); err != nil {
		return model.MarketPrice{}, err
	}

	priceDate, err := validation.ParseDate(req.PriceDate)
	if err != nil {
		return model.MarketPrice{}, err
	}

	price := model.MarketPrice{
		ID:         uuid.NewString(),
		Category:   req.Category,
		PricePerKg: req.PricePerKg,
		PriceDate:  priceDate,
		Source:     req.Source,
		Saleyard:   req.Saleyard,
		State:      req.State,
	}

	if err := s.priceRepo.InsertPrices([]model.MarketPrice{price}); err != nil {
		return model.MarketPrice{}, err
	}

	return price, nil
}

// Refresh pulls the latest saleyard report from the market feed and stores
// its quotes. Returns the number of quotes stored.
func (s *PriceService) Refresh(ctx context.Context) (int, error) {
	if s.feed == nil {
		return 0, nil
	}

	prices, err := s.feed.FetchLatest(ctx)
	if err != nil {
		return 0, err
	}

	if err := s.priceRepo.InsertPrices(prices); err != nil {
		return 0, err
	}

	s.logger.Info("market prices refreshed", zap.Int("quotes", len(prices)))
	return len(prices), nil
}

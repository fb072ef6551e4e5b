package testutil

import (
	"context"
	"time"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
)

// MockFeedClient is a mock implementation of marketfeed.Client for testing.
// It returns predefined quotes instead of calling the report service.
type MockFeedClient struct {
	// Quotes is returned from FetchLatest when Err is nil.
	Quotes []model.MarketPrice
	// Err is the error to return from FetchLatest.
	Err error
	// FetchCount tracks how many times FetchLatest was called.
	FetchCount int
}

// NewMockFeedClient creates a mock feed with a small default report.
func NewMockFeedClient() *MockFeedClient {
	now := time.Now().UTC()
	return &MockFeedClient{
		Quotes: []model.MarketPrice{
			{ID: MakeID(), Category: "Grown Steer", PricePerKg: 3.52, PriceDate: now, Source: "saleyard-report", Saleyard: "Roma Saleyards", State: "QLD"},
			{ID: MakeID(), Category: "Trade Lamb", PricePerKg: 7.85, PriceDate: now, Source: "saleyard-report", Saleyard: "Wagga Wagga", State: "NSW"},
		},
	}
}

// FetchLatest returns the configured quotes or error.
func (m *MockFeedClient) FetchLatest(_ context.Context) ([]model.MarketPrice, error) {
	m.FetchCount++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Quotes, nil
}

// WithQuotes configures the mock to return the given quotes.
func (m *MockFeedClient) WithQuotes(quotes []model.MarketPrice) *MockFeedClient {
	m.Quotes = quotes
	return m
}

// WithError configures the mock to return the specified error.
func (m *MockFeedClient) WithError(err error) *MockFeedClient {
	m.Err = err
	return m
}

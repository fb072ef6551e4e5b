// Package marketfeed fetches saleyard market reports from an external price
// service and converts them into MarketPrice records. It is the only
// network-facing component; the valuation core never sees it.
package marketfeed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/config"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
)

// Client exposes market report operations used by the application.
type Client interface {
	FetchLatest(ctx context.Context) ([]model.MarketPrice, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a market feed client using the provided configuration values.
func NewClient(cfg config.FeedConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)

	if cfg.APIKey != "" {
		restyClient.SetHeader("X-API-Key", cfg.APIKey)
	}

	return &APIClient{httpClient: restyClient}
}

// reportResponse mirrors the market report payload.
type reportResponse struct {
	ReportDate string `json:"reportDate"`
	Saleyard   string `json:"saleyard"`
	State      string `json:"state"`
	Source     string `json:"source"`
	Prices     []struct {
		Category   string  `json:"category"`
		PricePerKg float64 `json:"pricePerKg"`
	} `json:"prices"`
}

// apiError represents an error payload from the price service.
type apiError struct {
	Error string `json:"error"`
}

// FetchLatest retrieves the latest saleyard report and converts it into
// MarketPrice records. Quotes with an empty category or a non-positive price
// are dropped rather than failing the whole report.
func (c *APIClient) FetchLatest(ctx context.Context) ([]model.MarketPrice, error) {
	result := new(reportResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get("/v1/reports/latest")
	if err != nil {
		return nil, fmt.Errorf("fetch market report: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch market report: status %d: %s", resp.StatusCode(), apiErr.Error)
	}

	reportDate, err := time.Parse("2006-01-02", result.ReportDate)
	if err != nil {
		return nil, fmt.Errorf("parse report date %q: %w", result.ReportDate, err)
	}

	source := result.Source
	if source == "" {
		source = result.Saleyard
	}

	prices := make([]model.MarketPrice, 0, len(result.Prices))
	for _, quote := range result.Prices {
		if quote.Category == "" || quote.PricePerKg <= 0 {
			continue
		}
		prices = append(prices, model.MarketPrice{
			ID:         uuid.NewString(),
			Category:   quote.Category,
			PricePerKg: quote.PricePerKg,
			PriceDate:  reportDate.UTC(),
			Source:     source,
			Saleyard:   result.Saleyard,
			State:      result.State,
		})
	}

	return prices, nil
}

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/request"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/response"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/service"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/validation"
)

// PriceHandler handles market price HTTP requests
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// Prices handles GET /api/price, returning the latest quote per category.
func (h *PriceHandler) Prices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.priceService.GetLatestPrices()
	if err != nil {
		respondServiceError(w, "Failed to retrieve prices", err)
		return
	}

	respondJSON(w, http.StatusOK, prices)
}

// CreatePrice handles POST /api/price for manual quote entry.
func (h *PriceHandler) CreatePrice(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	price, err := h.priceService.CreatePrice(req)
	if err != nil {
		respondServiceError(w, "Failed to create price", err)
		return
	}

	respondJSON(w, http.StatusCreated, price)
}

// PriceHistory handles GET /api/price/history?category=X&from=Y&to=Z,
// returning a category's quotes over a date range. The range defaults to
// the trailing ninety days.
func (h *PriceHandler) PriceHistory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		response.RespondError(w, http.StatusBadRequest, "category is required", "")
		return
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -90)

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := validation.ParseDate(raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid from date", err.Error())
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := validation.ParseDate(raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid to date", err.Error())
			return
		}
		to = parsed
	}
	if to.Before(from) {
		response.RespondError(w, http.StatusBadRequest, "invalid date range", "to precedes from")
		return
	}

	prices, err := h.priceService.GetPricesOnCategory(category, from, to)
	if err != nil {
		respondServiceError(w, "Failed to retrieve price history", err)
		return
	}

	respondJSON(w, http.StatusOK, prices)
}

// RefreshResponse reports how many quotes a feed refresh stored.
type RefreshResponse struct {
	Quotes int `json:"quotes"`
}

// RefreshPrices handles POST /api/price/refresh, pulling the latest
// saleyard report from the market feed.
func (h *PriceHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.priceService.Refresh(r.Context())
	if err != nil {
		respondServiceError(w, "Failed to refresh prices", err)
		return
	}

	respondJSON(w, http.StatusOK, RefreshResponse{Quotes: quotes})
}

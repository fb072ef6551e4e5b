package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/service"
)

// PortfolioHandler handles portfolio valuation HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	snapshotService  *service.SnapshotService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService, snapshotService *service.SnapshotService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		snapshotService:  snapshotService,
	}
}

// Summary handles GET /api/portfolio/summary: the authoritative aggregation
// over all active herds. With no active herds it responds 204 No Content,
// so clients can distinguish "no data" from an empty portfolio figure.
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.portfolioService.GetPortfolioSummary(r.Context())
	if err != nil {
		respondServiceError(w, "Failed to compute portfolio summary", err)
		return
	}
	if summary == nil {
		respondJSON(w, http.StatusNoContent, nil)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// Overview handles GET /api/portfolio/overview: the fast path serving the
// stored snapshot, or a rough estimate when none exists yet.
func (h *PortfolioHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.portfolioService.GetOverview()
	if err != nil {
		respondServiceError(w, "Failed to retrieve portfolio overview", err)
		return
	}
	if overview.Snapshot == nil && overview.Estimate == nil {
		respondJSON(w, http.StatusNoContent, nil)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

// HerdValuation handles GET /api/herd/{uuid}/valuation for detail views.
func (h *PortfolioHandler) HerdValuation(w http.ResponseWriter, r *http.Request) {
	valuation, err := h.portfolioService.GetHerdValuation(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "Failed to compute herd valuation", err)
		return
	}

	respondJSON(w, http.StatusOK, valuation)
}

// RefreshSnapshotResponse reports whether a snapshot was written.
type RefreshSnapshotResponse struct {
	Refreshed bool `json:"refreshed"`
}

// RefreshSnapshot handles POST /api/portfolio/snapshot/refresh.
func (h *PortfolioHandler) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	refreshed, err := h.snapshotService.Refresh(r.Context())
	if err != nil {
		respondServiceError(w, "Failed to refresh snapshot", err)
		return
	}

	respondJSON(w, http.StatusOK, RefreshSnapshotResponse{Refreshed: refreshed})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/request"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/response"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/service"
)

// maxImportSize bounds CSV import request bodies (4 MiB).
const maxImportSize = 4 << 20

// HerdHandler handles herd-related HTTP requests
type HerdHandler struct {
	herdService *service.HerdService
}

// NewHerdHandler creates a new HerdHandler
func NewHerdHandler(herdService *service.HerdService) *HerdHandler {
	return &HerdHandler{
		herdService: herdService,
	}
}

// Herds handles GET /api/herd, optionally including sold herds with
// ?includeSold=true.
func (h *HerdHandler) Herds(w http.ResponseWriter, r *http.Request) {
	includeSold := r.URL.Query().Get("includeSold") == "true"

	herds, err := h.herdService.GetAllHerds(includeSold)
	if err != nil {
		respondServiceError(w, "Failed to retrieve herds", err)
		return
	}

	respondJSON(w, http.StatusOK, herds)
}

// Herd handles GET /api/herd/{uuid}.
func (h *HerdHandler) Herd(w http.ResponseWriter, r *http.Request) {
	herd, err := h.herdService.GetHerd(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "Failed to retrieve herd", err)
		return
	}

	respondJSON(w, http.StatusOK, herd)
}

// CreateHerd handles POST /api/herd.
func (h *HerdHandler) CreateHerd(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHerdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	herd, err := h.herdService.CreateHerd(req)
	if err != nil {
		respondServiceError(w, "Failed to create herd", err)
		return
	}

	respondJSON(w, http.StatusCreated, herd)
}

// UpdateHerd handles PUT /api/herd/{uuid}.
func (h *HerdHandler) UpdateHerd(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateHerdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	herd, err := h.herdService.UpdateHerd(chi.URLParam(r, "uuid"), req)
	if err != nil {
		respondServiceError(w, "Failed to update herd", err)
		return
	}

	respondJSON(w, http.StatusOK, herd)
}

// SellHerd handles POST /api/herd/{uuid}/sell, removing the herd from
// active valuation.
func (h *HerdHandler) SellHerd(w http.ResponseWriter, r *http.Request) {
	if err := h.herdService.SellHerd(chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "Failed to sell herd", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// ImportHerds handles POST /api/herd/import with a CSV body.
func (h *HerdHandler) ImportHerds(w http.ResponseWriter, r *http.Request) {
	result, err := h.herdService.ImportCSV(http.MaxBytesReader(w, r.Body, maxImportSize))
	if err != nil {
		respondServiceError(w, "Failed to import herds", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/response"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/apperrors"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/validation"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	response.RespondJSON(w, status, data)
}

// respondServiceError maps service-layer errors to HTTP status codes:
// not-found sentinels to 404, validation errors to 400, a sale of an
// already-sold herd to 409, everything else 500.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	var validationErr *validation.Error

	switch {
	case errors.Is(err, apperrors.ErrHerdNotFound),
		errors.Is(err, apperrors.ErrPriceNotFound),
		errors.Is(err, apperrors.ErrSnapshotNotFound):
		response.RespondError(w, http.StatusNotFound, message, err.Error())
	case errors.As(err, &validationErr):
		response.RespondError(w, http.StatusBadRequest, message, validationErr.Fields)
	case errors.Is(err, apperrors.ErrHerdAlreadySold):
		response.RespondError(w, http.StatusConflict, message, err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, message, err.Error())
	}
}

package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"fyyur/internal/delivery/http/helpers"
	"fyyur/internal/domain"
)

// writeServiceError maps a service error onto the response envelope.
// Unexpected failures are logged; their cause never reaches the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFound string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, verr.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFound)
	case errors.Is(err, domain.ErrReferenceNotFound):
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrConsistency):
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeConsistency, "directory data is inconsistent")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
	}
}

// SearchRequest is the request body for the search endpoints. An empty term matches everything.
type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}

// SearchSuccessResponse is the success response envelope for the search endpoints (200).
type SearchSuccessResponse struct {
	Data  *domain.SearchResult `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// DeleteResponse is the response body of the delete endpoints.
type DeleteResponse struct {
	Status string `json:"status"`
}

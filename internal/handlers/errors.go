package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"lecturebot/internal/contextutil"
	"lecturebot/internal/service"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeJSON writes a JSON response with status 200.
func writeJSON(ctx context.Context, w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger := contextutil.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// handleServiceError maps service error kinds to HTTP status codes:
// validation 400, external service 502, store 503, everything else 500.
func handleServiceError(ctx context.Context, w http.ResponseWriter, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, service.ErrExternalService):
		writeError(w, http.StatusBadGateway, "External service error")
	case errors.Is(err, service.ErrStore):
		writeError(w, http.StatusServiceUnavailable, "Store unavailable")
	default:
		writeError(w, http.StatusInternalServerError, defaultMsg)
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cottage-store/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// statusFor maps an error to a response status: domain (validation) errors
// become 400, not-found sentinels 404, everything else 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrCategoryNotFound),
		errors.Is(err, model.ErrOrderNotFound):
		return http.StatusNotFound
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

package handler

import (
	"encoding/json"
	"net/http"

	"cottage-store/internal/model"
	"cottage-store/internal/repository"

	"github.com/rs/zerolog"
)

// SettingsHandler serves the home-page content: public read, admin write.
type SettingsHandler struct {
	repo   repository.SettingsRepository
	logger zerolog.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(repo repository.SettingsRepository, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		repo:   repo,
		logger: logger.With().Str("handler", "settings").Logger(),
	}
}

// Get handles GET /api/settings. An unconfigured site returns an empty
// settings object, not an error.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	settings, err := h.repo.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve settings", h.logger)
		return
	}
	if settings == nil {
		settings = &model.SiteSettings{}
	}

	writeJSON(w, http.StatusOK, settings)
}

// Update handles PUT /api/admin/settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var s model.SiteSettings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.repo.Upsert(r.Context(), &s); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save settings", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, s)
}

package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"cottage-store/internal/model"
	"cottage-store/internal/shop"

	"github.com/rs/zerolog"
)

// CategoryHandler serves the public category list and the admin CRUD.
type CategoryHandler struct {
	catalog *shop.CatalogStore
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(catalog *shop.CatalogStore, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.Categories())
}

// Create handles POST /api/admin/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c model.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if c.Name == "" {
		writeError(w, http.StatusBadRequest, "category name is required", h.logger)
		return
	}

	if err := h.catalog.AddCategory(r.Context(), c); err != nil {
		writeError(w, statusFor(err), "failed to save category", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, h.catalog.Categories())
}

// Update handles PUT /api/admin/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/categories/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "category ID is required", h.logger)
		return
	}

	var c model.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.catalog.UpdateCategory(r.Context(), id, c); err != nil {
		writeError(w, statusFor(err), "failed to update category", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.catalog.Categories())
}

// Delete handles DELETE /api/admin/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/categories/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "category ID is required", h.logger)
		return
	}

	if err := h.catalog.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, statusFor(err), "failed to delete category", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

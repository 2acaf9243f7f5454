package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"cottage-store/internal/model"
	"cottage-store/internal/shop"

	"github.com/rs/zerolog"
)

// ProductHandler serves the public catalog reads and the admin product CRUD,
// both backed by the catalog store.
type ProductHandler struct {
	catalog *shop.CatalogStore
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog *shop.CatalogStore, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.Products())
}

// GetByID handles GET /api/products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product := h.catalog.ProductByID(id)
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/admin/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if p.Name == "" || p.Price == "" {
		writeError(w, http.StatusBadRequest, "name and price are required", h.logger)
		return
	}

	if err := h.catalog.AddProduct(r.Context(), p); err != nil {
		writeError(w, statusFor(err), "failed to save product", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, h.catalog.Products())
}

// Update handles PUT /api/admin/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/products/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	var p model.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.catalog.UpdateProduct(r.Context(), id, p); err != nil {
		writeError(w, statusFor(err), "failed to update product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.catalog.Products())
}

// Delete handles DELETE /api/admin/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/products/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, statusFor(err), "failed to delete product", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

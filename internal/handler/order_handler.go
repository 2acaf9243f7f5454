package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cottage-store/internal/model"
	"cottage-store/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler serves the public checkout endpoint and the admin order
// listing.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Checkout handles POST /api/checkout. The response envelope is {"data": ...}
// on success and {"error": ...} on failure; the storefront shows a generic
// retry prompt on anything but 200.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	order, err := h.service.Checkout(r.Context(), &req)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": domainErr.Message})
			return
		}
		h.logger.Error().Err(err).Msg("checkout failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": order})
}

// List handles GET /api/admin/orders with an optional ?source=web|pos filter.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	source := r.URL.Query().Get("source")
	if source != "" && source != model.OrderSourceWeb && source != model.OrderSourcePOS {
		writeError(w, http.StatusBadRequest, "invalid source filter", h.logger)
		return
	}

	orders, err := h.service.List(r.Context(), source)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// Delete handles DELETE /api/admin/orders/{id}.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/admin/orders/")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, statusFor(err), "failed to delete order", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cottage-store/internal/catalog"
	"cottage-store/internal/model"
	"cottage-store/internal/pos"
	"cottage-store/internal/repository"
	"cottage-store/internal/shop"

	"github.com/rs/zerolog"
)

// POSHandler turns a finished point-of-sale bill into an order record.
type POSHandler struct {
	catalog   *shop.CatalogStore
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewPOSHandler creates a new point-of-sale handler.
func NewPOSHandler(catalog *shop.CatalogStore, orderRepo repository.OrderRepository, logger zerolog.Logger) *POSHandler {
	return &POSHandler{
		catalog:   catalog,
		orderRepo: orderRepo,
		logger:    logger.With().Str("handler", "pos").Logger(),
	}
}

// posBillRequest is the operator's finished bill.
type posBillRequest struct {
	CustomerName string        `json:"customerName"`
	Lines        []posBillLine `json:"lines"`
}

type posBillLine struct {
	ProductID        string            `json:"productId"`
	SelectedVariants map[string]string `json:"selectedVariants,omitempty"`
	Quantity         int               `json:"quantity"`
	CustomPrice      string            `json:"customPrice,omitempty"`
}

// CreateBill handles POST /api/admin/pos/bills. Each line resolves its price
// through the product's variant overrides; an operator-entered custom price
// takes precedence over the resolved one.
func (h *POSHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req posBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	bill := pos.NewBill(h.orderRepo, h.logger)
	for _, line := range req.Lines {
		product := h.catalog.ProductByID(line.ProductID)
		if product == nil {
			writeError(w, http.StatusBadRequest, "unknown product: "+line.ProductID, h.logger)
			return
		}
		if line.Quantity < 1 {
			writeError(w, http.StatusBadRequest, "quantity must be at least 1 for product: "+line.ProductID, h.logger)
			return
		}

		var sel catalog.Selection
		if line.SelectedVariants != nil {
			sel = catalog.Selection(line.SelectedVariants)
		}
		key := bill.AddProduct(product, sel)
		if line.Quantity > 1 {
			bill.SetQuantity(key, line.Quantity)
		}
		if line.CustomPrice != "" {
			bill.OverridePrice(key, line.CustomPrice)
		}
	}

	order, err := bill.Finalize(r.Context(), req.CustomerName)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeError(w, http.StatusBadRequest, domainErr.Message, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save bill", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

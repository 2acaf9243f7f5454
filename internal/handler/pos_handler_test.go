package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cottage-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	created []*model.Order
	err     error
}

func (s *stubOrderRepo) Create(ctx context.Context, order *model.Order) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, order)
	return nil
}

func (s *stubOrderRepo) List(ctx context.Context, source string) ([]model.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func posTestCatalog(t *testing.T) (*stubOrderRepo, *POSHandler) {
	t.Helper()
	productRepo := &stubProductRepo{products: []model.Product{
		{
			ID:    "P001",
			Name:  "Brass Idol",
			Price: "1499",
			Variants: []model.VariantDimension{
				{Type: "Size", Options: []model.VariantOption{
					{Label: "Small"},
					{Label: "Large", Price: "2499"},
				}},
			},
		},
		{ID: "P002", Name: "Diya", Price: "249"},
	}}
	catalog := newTestCatalog(t, productRepo, &stubCategoryRepo{})
	orderRepo := &stubOrderRepo{}
	return orderRepo, NewPOSHandler(catalog, orderRepo, zerolog.Nop())
}

func TestPOSHandler_CreateBill(t *testing.T) {
	t.Run("persists completed pos order", func(t *testing.T) {
		orderRepo, h := posTestCatalog(t)

		body := `{
			"customerName": "Walk-in Ram",
			"lines": [
				{"productId": "P001", "selectedVariants": {"Size": "Large"}, "quantity": 2},
				{"productId": "P002", "quantity": 1, "customPrice": "200"}
			]
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/pos/bills", bytes.NewReader([]byte(body)))
		rec := httptest.NewRecorder()

		h.CreateBill(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, orderRepo.created, 1)
		saved := orderRepo.created[0]
		assert.Equal(t, model.OrderSourcePOS, saved.Source)
		assert.Equal(t, model.OrderStatusCompleted, saved.Status)
		assert.Equal(t, "Walk-in Ram", saved.CustomerName)
		assert.Equal(t, "Store Walk-in", saved.CustomerAddress)
		// 2499 x 2 for the large idol plus the operator's 200 for the diya.
		assert.Equal(t, 5198.0, saved.TotalAmount)

		var got model.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, saved.ID, got.ID)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, h := posTestCatalog(t)

		body := `{"customerName": "Ram", "lines": [{"productId": "nope", "quantity": 1}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/pos/bills", bytes.NewReader([]byte(body)))
		rec := httptest.NewRecorder()

		h.CreateBill(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		orderRepo, h := posTestCatalog(t)

		body := `{"customerName": "Ram", "lines": [{"productId": "P002", "quantity": 0}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/pos/bills", bytes.NewReader([]byte(body)))
		rec := httptest.NewRecorder()

		h.CreateBill(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, orderRepo.created)
	})

	t.Run("empty bill rejected", func(t *testing.T) {
		orderRepo, h := posTestCatalog(t)

		body := `{"customerName": "Ram", "lines": []}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/pos/bills", bytes.NewReader([]byte(body)))
		rec := httptest.NewRecorder()

		h.CreateBill(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, orderRepo.created)
	})

	t.Run("missing customer name rejected", func(t *testing.T) {
		orderRepo, h := posTestCatalog(t)

		body := `{"lines": [{"productId": "P002", "quantity": 1}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/pos/bills", bytes.NewReader([]byte(body)))
		rec := httptest.NewRecorder()

		h.CreateBill(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, orderRepo.created)
	})
}

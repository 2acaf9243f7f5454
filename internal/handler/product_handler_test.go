package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cottage-store/internal/model"
	"cottage-store/internal/shop"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProductRepo is an in-memory repository.ProductRepository for handler
// tests. failWrites makes every mutation fail, exercising the revert path.
type stubProductRepo struct {
	products   []model.Product
	failWrites bool
}

func (s *stubProductRepo) List(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *stubProductRepo) Create(ctx context.Context, p *model.Product) error {
	if s.failWrites {
		return errors.New("write failed")
	}
	s.products = append(s.products, *p)
	return nil
}

func (s *stubProductRepo) Update(ctx context.Context, p *model.Product) error {
	if s.failWrites {
		return errors.New("write failed")
	}
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = *p
		}
	}
	return nil
}

func (s *stubProductRepo) Delete(ctx context.Context, id string) error {
	if s.failWrites {
		return errors.New("write failed")
	}
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	return nil
}

type stubCategoryRepo struct {
	categories []model.Category
}

func (s *stubCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *stubCategoryRepo) Create(ctx context.Context, c *model.Category) error {
	s.categories = append(s.categories, *c)
	return nil
}

func (s *stubCategoryRepo) Update(ctx context.Context, c *model.Category) error {
	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = *c
		}
	}
	return nil
}

func (s *stubCategoryRepo) Delete(ctx context.Context, id string) error {
	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	return nil
}

func newTestCatalog(t *testing.T, productRepo *stubProductRepo, categoryRepo *stubCategoryRepo) *shop.CatalogStore {
	t.Helper()
	store := shop.NewCatalogStore(productRepo, categoryRepo, zerolog.Nop())
	require.NoError(t, store.Refresh(context.Background()))
	return store
}

func TestProductHandler_List(t *testing.T) {
	repo := &stubProductRepo{products: []model.Product{
		{ID: "P1", Name: "Brass Idol", Price: "1499", CategoryID: "C1"},
	}}
	catalog := newTestCatalog(t, repo, &stubCategoryRepo{categories: []model.Category{{ID: "C1", Name: "Idols"}}})
	h := NewProductHandler(catalog, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Brass Idol", got[0].Name)
	assert.Equal(t, "Idols", got[0].Category)
}

func TestProductHandler_GetByID(t *testing.T) {
	repo := &stubProductRepo{products: []model.Product{{ID: "P1", Name: "Brass Idol", Price: "1499"}}}
	catalog := newTestCatalog(t, repo, &stubCategoryRepo{})
	h := NewProductHandler(catalog, zerolog.Nop())

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products/P1", nil)
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "P1", got.ID)
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products/nope", nil)
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("returns updated catalog", func(t *testing.T) {
		repo := &stubProductRepo{}
		catalog := newTestCatalog(t, repo, &stubCategoryRepo{categories: []model.Category{{ID: "C1", Name: "Idols"}}})
		h := NewProductHandler(catalog, zerolog.Nop())

		body, _ := json.Marshal(model.Product{Name: "New Idol", Price: "999", Category: "Idols"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got []model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "New Idol", got[0].Name)
		assert.NotEmpty(t, got[0].ID)
		require.Len(t, repo.products, 1)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		catalog := newTestCatalog(t, &stubProductRepo{}, &stubCategoryRepo{})
		h := NewProductHandler(catalog, zerolog.Nop())

		body, _ := json.Marshal(model.Product{Price: "999"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("write failure reverts snapshot", func(t *testing.T) {
		repo := &stubProductRepo{failWrites: true}
		catalog := newTestCatalog(t, repo, &stubCategoryRepo{})
		h := NewProductHandler(catalog, zerolog.Nop())

		body, _ := json.Marshal(model.Product{Name: "Ghost", Price: "1"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, catalog.Products())
	})
}

func TestProductHandler_Delete(t *testing.T) {
	repo := &stubProductRepo{products: []model.Product{{ID: "P1", Name: "Brass Idol", Price: "1499"}}}
	catalog := newTestCatalog(t, repo, &stubCategoryRepo{})
	h := NewProductHandler(catalog, zerolog.Nop())

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/products/P1", nil)
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, catalog.Products())
	assert.Empty(t, repo.products)
}

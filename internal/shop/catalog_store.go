package shop

import (
	"context"
	"sync"
	"time"

	"cottage-store/internal/model"
	"cottage-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CatalogStore owns the in-memory snapshot of products and categories that
// the storefront and admin panel read from. It is injected by reference into
// its consumers; there is no ambient global.
//
// Mutations follow a three-phase optimistic protocol: apply the tentative
// local state, issue the remote write, and on failure discard the tentative
// state by re-reading the authoritative rows. Last writer wins across
// concurrent admin sessions; no version field or conflict detection exists.
type CatalogStore struct {
	mu         sync.RWMutex
	products   []model.Product
	categories []model.Category

	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewCatalogStore creates an empty store; call Refresh to load the snapshot.
func NewCatalogStore(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	logger zerolog.Logger,
) *CatalogStore {
	return &CatalogStore{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("component", "catalog-store").Logger(),
	}
}

// Refresh replaces the snapshot with the authoritative rows. Products carry a
// category_id foreign key in the database; the display name is resolved here,
// a fetch-time projection that also picks up category renames.
func (s *CatalogStore) Refresh(ctx context.Context) error {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return err
	}
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return err
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	for i := range products {
		products[i].Category = names[products[i].CategoryID]
	}

	s.mu.Lock()
	s.products = products
	s.categories = categories
	s.mu.Unlock()

	s.logger.Debug().
		Int("products", len(products)).
		Int("categories", len(categories)).
		Msg("catalog snapshot refreshed")

	return nil
}

// Products returns a copy of the current product snapshot.
func (s *CatalogStore) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories returns a copy of the current category snapshot.
func (s *CatalogStore) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// ProductByID returns the snapshot product with the given id, or nil.
func (s *CatalogStore) ProductByID(id string) *model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

// AddProduct inserts a product, newest-first in the snapshot. A missing id is
// generated; the category name is resolved to its id before writing.
func (s *CatalogStore) AddProduct(ctx context.Context, p model.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.CategoryID = s.categoryIDByName(p.Category)

	return s.applyOptimistic(ctx,
		func() {
			s.products = append([]model.Product{p}, s.products...)
		},
		func(ctx context.Context) error {
			return s.productRepo.Create(ctx, &p)
		},
	)
}

// UpdateProduct replaces the product with the given id.
func (s *CatalogStore) UpdateProduct(ctx context.Context, id string, p model.Product) error {
	p.ID = id
	p.CategoryID = s.categoryIDByName(p.Category)

	return s.applyOptimistic(ctx,
		func() {
			for i := range s.products {
				if s.products[i].ID == id {
					s.products[i] = p
				}
			}
		},
		func(ctx context.Context) error {
			return s.productRepo.Update(ctx, &p)
		},
	)
}

// DeleteProduct removes the product with the given id.
func (s *CatalogStore) DeleteProduct(ctx context.Context, id string) error {
	return s.applyOptimistic(ctx,
		func() {
			kept := s.products[:0]
			for _, p := range s.products {
				if p.ID != id {
					kept = append(kept, p)
				}
			}
			s.products = kept
		},
		func(ctx context.Context) error {
			return s.productRepo.Delete(ctx, id)
		},
	)
}

// AddCategory inserts a category.
func (s *CatalogStore) AddCategory(ctx context.Context, c model.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	return s.applyOptimistic(ctx,
		func() {
			s.categories = append([]model.Category{c}, s.categories...)
		},
		func(ctx context.Context) error {
			return s.categoryRepo.Create(ctx, &c)
		},
	)
}

// UpdateCategory replaces the category with the given id. Product display
// names pick up a rename on the next Refresh.
func (s *CatalogStore) UpdateCategory(ctx context.Context, id string, c model.Category) error {
	c.ID = id

	return s.applyOptimistic(ctx,
		func() {
			for i := range s.categories {
				if s.categories[i].ID == id {
					s.categories[i] = c
				}
			}
		},
		func(ctx context.Context) error {
			return s.categoryRepo.Update(ctx, &c)
		},
	)
}

// DeleteCategory removes the category with the given id. Products keep their
// dangling category_id; their projected name resolves to empty on the next
// Refresh.
func (s *CatalogStore) DeleteCategory(ctx context.Context, id string) error {
	return s.applyOptimistic(ctx,
		func() {
			kept := s.categories[:0]
			for _, c := range s.categories {
				if c.ID != id {
					kept = append(kept, c)
				}
			}
			s.categories = kept
		},
		func(ctx context.Context) error {
			return s.categoryRepo.Delete(ctx, id)
		},
	)
}

// applyOptimistic runs one mutation through the three-phase protocol:
// tentative local apply, remote write, and on write failure a full Refresh to
// discard the tentative state. The write error is returned either way.
func (s *CatalogStore) applyOptimistic(ctx context.Context, apply func(), write func(context.Context) error) error {
	s.mu.Lock()
	apply()
	s.mu.Unlock()

	if err := write(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("remote write failed, reverting optimistic state")
		if refreshErr := s.Refresh(ctx); refreshErr != nil {
			s.logger.Error().Err(refreshErr).Msg("failed to refresh after write failure")
		}
		return err
	}
	return nil
}

func (s *CatalogStore) categoryIDByName(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Name == name {
			return c.ID
		}
	}
	return ""
}

package repository

import (
	"context"

	"cottage-store/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines data access for catalogue products.
type ProductRepository interface {
	// List retrieves all products, newest first.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product, or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a new product row.
	Create(ctx context.Context, p *model.Product) error

	// Update rewrites the product row matching p.ID.
	Update(ctx context.Context, p *model.Product) error

	// Delete removes the product row with the given id.
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	// List retrieves all categories, newest first.
	List(ctx context.Context) ([]model.Category, error)

	// Create inserts a new category row.
	Create(ctx context.Context, c *model.Category) error

	// Update rewrites the category row matching c.ID.
	Update(ctx context.Context, c *model.Category) error

	// Delete removes the category row with the given id.
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines data access for order records. Orders are written
// once and never updated; administrators may delete them.
type OrderRepository interface {
	// Create inserts a new order with its line items.
	Create(ctx context.Context, o *model.Order) error

	// List retrieves orders newest first, optionally filtered by source
	// ("web" or "pos"; empty means all).
	List(ctx context.Context, source string) ([]model.Order, error)

	// Delete removes the order with the given id.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettingsRepository defines access to the singleton site settings row.
type SettingsRepository interface {
	// Get retrieves the settings row, or (nil, nil) when none exists yet.
	Get(ctx context.Context) (*model.SiteSettings, error)

	// Upsert writes the settings row, creating it if missing.
	Upsert(ctx context.Context, s *model.SiteSettings) error
}

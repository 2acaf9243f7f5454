package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"cottage-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

const productColumns = `id, name, price, original_price, images, badge, badge_color, materials, tagline, description, category_id, variants, created_at`

// List retrieves all products, newest first.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to query product: %w", err)
		}
		r.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, nil
	}

	p, err := scanProduct(rows)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to scan product")
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	return p, nil
}

// Create inserts a new product row.
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	args, err := productArgs(p)
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		r.logger.Error().Err(err).Str("product_id", p.ID).Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Str("product_id", p.ID).Msg("product created")
	return nil
}

// Update rewrites the product row matching p.ID.
func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, original_price = $4, images = $5, badge = $6,
		    badge_color = $7, materials = $8, tagline = $9, description = $10,
		    category_id = $11, variants = $12, created_at = $13
		WHERE id = $1
	`

	args, err := productArgs(p)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", p.ID).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// Delete removes the product row with the given id.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	r.logger.Debug().Str("product_id", id).Msg("product deleted")
	return nil
}

// productArgs builds the positional arguments shared by Create and Update.
// Slice-valued fields are stored as jsonb.
func productArgs(p *model.Product) ([]interface{}, error) {
	price, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid product price %q: %w", p.Price, err)
	}

	var originalPrice *float64
	if p.OriginalPrice != "" {
		v, err := strconv.ParseFloat(p.OriginalPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid original price %q: %w", p.OriginalPrice, err)
		}
		originalPrice = &v
	}

	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode images: %w", err)
	}
	materials, err := json.Marshal(p.Materials)
	if err != nil {
		return nil, fmt.Errorf("failed to encode materials: %w", err)
	}
	variants, err := json.Marshal(p.Variants)
	if err != nil {
		return nil, fmt.Errorf("failed to encode variants: %w", err)
	}

	var categoryID *string
	if p.CategoryID != "" {
		categoryID = &p.CategoryID
	}

	return []interface{}{
		p.ID, p.Name, price, originalPrice, images, p.Badge, p.BadgeColor,
		materials, p.Tagline, p.Description, categoryID, variants, p.CreatedAt,
	}, nil
}

// scanProduct reads one product row, converting numeric prices back to the
// decimal-string form the model carries.
func scanProduct(rows pgx.Rows) (*model.Product, error) {
	var (
		p             model.Product
		price         float64
		originalPrice *float64
		categoryID    *string
		images        []byte
		materials     []byte
		variants      []byte
	)

	err := rows.Scan(&p.ID, &p.Name, &price, &originalPrice, &images, &p.Badge,
		&p.BadgeColor, &materials, &p.Tagline, &p.Description, &categoryID,
		&variants, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	p.Price = strconv.FormatFloat(price, 'f', -1, 64)
	if originalPrice != nil {
		p.OriginalPrice = strconv.FormatFloat(*originalPrice, 'f', -1, 64)
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images: %w", err)
		}
	}
	if len(materials) > 0 {
		if err := json.Unmarshal(materials, &p.Materials); err != nil {
			return nil, fmt.Errorf("failed to decode materials: %w", err)
		}
	}
	if len(variants) > 0 {
		if err := json.Unmarshal(variants, &p.Variants); err != nil {
			return nil, fmt.Errorf("failed to decode variants: %w", err)
		}
	}

	return &p, nil
}

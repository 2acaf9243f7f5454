package repository

import (
	"context"
	"fmt"

	"cottage-store/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// List retrieves all categories, newest first.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT id, name, image, created_at
		FROM categories
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// Create inserts a new category row.
func (r *categoryRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
		INSERT INTO categories (id, name, image, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Image, c.CreatedAt); err != nil {
		r.logger.Error().Err(err).Str("category_id", c.ID).Msg("failed to insert category")
		return fmt.Errorf("failed to insert category: %w", err)
	}

	r.logger.Debug().Str("category_id", c.ID).Msg("category created")
	return nil
}

// Update rewrites the category row matching c.ID.
func (r *categoryRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
		UPDATE categories
		SET name = $2, image = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Image)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", c.ID).Msg("failed to update category")
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}

	return nil
}

// Delete removes the category row with the given id.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}

	r.logger.Debug().Str("category_id", id).Msg("category deleted")
	return nil
}

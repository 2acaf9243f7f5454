package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"cottage-store/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
// Line items are stored as a jsonb column on the order row; orders are
// immutable once written.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create inserts a new order with its line items.
func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	query := `
		INSERT INTO orders (id, customer_name, customer_mobile, customer_address,
		                    items, total_amount, status, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, o.ID, o.CustomerName, o.CustomerMobile,
		o.CustomerAddress, items, o.TotalAmount, o.Status, o.Source, o.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", o.ID.String()).Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", o.ID.String()).
		Str("source", o.Source).
		Msg("order created")

	return nil
}

// List retrieves orders newest first, optionally filtered by source.
func (r *orderRepository) List(ctx context.Context, source string) ([]model.Order, error) {
	query := `
		SELECT id, customer_name, customer_mobile, customer_address,
		       items, total_amount, status, source, created_at
		FROM orders
	`
	args := []interface{}{}
	if source != "" {
		query += ` WHERE source = $1`
		args = append(args, source)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("source", source).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var (
			o     model.Order
			items []byte
		)
		err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerMobile,
			&o.CustomerAddress, &items, &o.TotalAmount, &o.Status, &o.Source,
			&o.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &o.Items); err != nil {
				return nil, fmt.Errorf("failed to decode order items: %w", err)
			}
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// Delete removes the order with the given id.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	r.logger.Debug().Str("order_id", id.String()).Msg("order deleted")
	return nil
}

package service

import (
	"context"

	"cottage-store/internal/model"

	"github.com/google/uuid"
)

// OrderService defines the order-facing operations: web checkout and the
// admin's read/delete access to order records.
type OrderService interface {
	// Checkout validates a web checkout, persists the order and sends the
	// confirmation email to the store mailbox.
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.Order, error)

	// List retrieves orders, optionally filtered by source ("web" or "pos").
	List(ctx context.Context, source string) ([]model.Order, error)

	// Delete removes an order record.
	Delete(ctx context.Context, id uuid.UUID) error
}

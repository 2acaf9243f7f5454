package service

import (
	"context"
	"fmt"
	"time"

	"cottage-store/internal/catalog"
	"cottage-store/internal/email"
	"cottage-store/internal/model"
	"cottage-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	sender    email.Sender
	storeName string
	fromAddr  string
	adminAddr string
	logger    zerolog.Logger
}

// NewOrderService creates a new order service. Confirmation mail goes to the
// fixed admin mailbox; the customer address stays out of the recipient list
// until the sending domain is verified with the provider.
func NewOrderService(
	orderRepo repository.OrderRepository,
	sender email.Sender,
	storeName, fromAddr, adminAddr string,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		sender:    sender,
		storeName: storeName,
		fromAddr:  fromAddr,
		adminAddr: adminAddr,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Checkout validates the request, persists the order with source "web" and
// sends the confirmation email. Validation failures happen before any write.
// An email failure is reported to the caller; the already persisted order is
// kept.
func (s *orderService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.Order, error) {
	if err := validateCheckout(req); err != nil {
		s.logger.Warn().Err(err).Msg("checkout validation failed")
		return nil, err
	}

	items := make([]model.OrderLine, len(req.Items))
	for i, item := range req.Items {
		price, err := catalog.ParsePrice(item.Price)
		if err != nil {
			price = 0
		}
		items[i] = model.OrderLine{
			ProductID: item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     price,
			Variants:  item.Variants,
		}
	}

	order := &model.Order{
		ID:              uuid.New(),
		CustomerName:    req.Name,
		CustomerMobile:  req.Mobile,
		CustomerAddress: req.Address,
		Items:           items,
		TotalAmount:     req.Total,
		Status:          model.OrderStatusPending,
		Source:          model.OrderSourceWeb,
		CreatedAt:       time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	html, err := email.RenderOrderConfirmation(s.storeName, req)
	if err != nil {
		return nil, err
	}

	_, err = s.sender.Send(ctx, email.Message{
		From:    s.fromAddr,
		To:      []string{s.adminAddr},
		Subject: fmt.Sprintf("Order Confirmation - %s", s.storeName),
		HTML:    html,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("confirmation email failed")
		return nil, fmt.Errorf("failed to send confirmation email: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(items)).
		Float64("total", order.TotalAmount).
		Msg("web checkout completed")

	return order, nil
}

// List retrieves orders, optionally filtered by source.
func (s *orderService) List(ctx context.Context, source string) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx, source)
	if err != nil {
		s.logger.Error().Err(err).Str("source", source).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Delete removes an order record.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if err != model.ErrOrderNotFound {
			s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		}
		return err
	}
	s.logger.Info().Str("order_id", id.String()).Msg("order deleted")
	return nil
}

// validateCheckout blocks incomplete submissions before any network call.
func validateCheckout(req *model.CheckoutRequest) error {
	if req == nil {
		return model.ErrMissingField
	}
	if req.Name == "" || req.Mobile == "" || req.Address == "" {
		return model.ErrMissingField
	}
	if len(req.Items) == 0 {
		return model.ErrEmptyBill
	}
	for _, item := range req.Items {
		if item.ID == "" {
			return model.ErrMissingField
		}
	}
	return nil
}

package pos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cottage-store/internal/catalog"
	"cottage-store/internal/model"
	"cottage-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Line is one bill entry. Distinct variant selections on the same base
// product occupy distinct lines, keyed by product id plus the chosen labels.
type Line struct {
	Key              string            `json:"key"`
	ProductID        string            `json:"productId"`
	Name             string            `json:"name"`
	Price            string            `json:"price"`
	CustomPrice      string            `json:"customPrice,omitempty"`
	Image            string            `json:"image,omitempty"`
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selectedVariants,omitempty"`
}

// UnitAmount is the line's effective unit price: the operator's manual
// override when one is set, the resolved price otherwise.
func (l *Line) UnitAmount() float64 {
	if l.CustomPrice != "" {
		if v, err := catalog.ParsePrice(l.CustomPrice); err == nil {
			return v
		}
	}
	v, err := catalog.ParsePrice(l.Price)
	if err != nil {
		return 0
	}
	return v
}

// Bill accumulates an in-person sale. Not safe for concurrent use; one bill
// per operator session.
type Bill struct {
	lines     []Line
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewBill creates an empty bill that persists through orderRepo on finalise.
func NewBill(orderRepo repository.OrderRepository, logger zerolog.Logger) *Bill {
	return &Bill{
		orderRepo: orderRepo,
		logger:    logger.With().Str("component", "pos-bill").Logger(),
	}
}

// DefaultSelection picks each dimension's first option, the operator's
// starting point before adjusting.
func DefaultSelection(p *model.Product) catalog.Selection {
	if len(p.Variants) == 0 {
		return nil
	}
	return withDefaults(p, nil)
}

// withDefaults fills every unselected dimension with its first option, so a
// partial selection never drops a dimension from the line key or the
// persisted variant record. Keys not matching any dimension are discarded.
func withDefaults(p *model.Product, sel catalog.Selection) catalog.Selection {
	if len(p.Variants) == 0 {
		return sel
	}
	merged := make(catalog.Selection, len(p.Variants))
	for _, dim := range p.Variants {
		if label, ok := sel[dim.Type]; ok {
			merged[dim.Type] = label
			continue
		}
		if len(dim.Options) > 0 {
			merged[dim.Type] = dim.Options[0].Label
		}
	}
	return merged
}

// AddProduct appends the product at the given selection, or increments the
// quantity of an existing line with the same key, and returns that key.
// Dimensions the selection leaves out default to their first option; a nil
// selection defaults every dimension.
func (b *Bill) AddProduct(p *model.Product, sel catalog.Selection) string {
	sel = withDefaults(p, sel)

	price, _ := catalog.ResolvePrice(p, sel)
	key := lineKey(p, sel)

	for i := range b.lines {
		if b.lines[i].Key == key {
			b.lines[i].Quantity++
			return key
		}
	}

	b.lines = append(b.lines, Line{
		Key:              key,
		ProductID:        p.ID,
		Name:             p.Name,
		Price:            price,
		Image:            p.Thumbnail(),
		Quantity:         1,
		SelectedVariants: sel,
	})
	return key
}

// OverridePrice records a manual unit price for the keyed line. The override
// feeds both the bill total and the persisted order record.
func (b *Bill) OverridePrice(key, price string) {
	for i := range b.lines {
		if b.lines[i].Key == key {
			b.lines[i].CustomPrice = price
			return
		}
	}
}

// SetQuantity sets the quantity on the keyed line; zero or less removes it.
func (b *Bill) SetQuantity(key string, quantity int) {
	if quantity <= 0 {
		b.RemoveLine(key)
		return
	}
	for i := range b.lines {
		if b.lines[i].Key == key {
			b.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveLine drops the keyed line.
func (b *Bill) RemoveLine(key string) {
	kept := b.lines[:0]
	for _, line := range b.lines {
		if line.Key != key {
			kept = append(kept, line)
		}
	}
	b.lines = kept
}

// Lines returns a copy of the current bill lines.
func (b *Bill) Lines() []Line {
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Total sums effective unit price * quantity across all lines.
func (b *Bill) Total() float64 {
	total := 0.0
	for _, line := range b.lines {
		total += line.UnitAmount() * float64(line.Quantity)
	}
	return total
}

// Finalize validates the bill, persists it as a completed point-of-sale
// order, and clears the bill. Validation failures leave the bill and the
// order store untouched.
func (b *Bill) Finalize(ctx context.Context, customerName string) (*model.Order, error) {
	if len(b.lines) == 0 {
		return nil, model.ErrEmptyBill
	}
	if customerName == "" {
		return nil, model.ErrMissingCustomer
	}

	items := make([]model.OrderLine, len(b.lines))
	for i, line := range b.lines {
		items[i] = model.OrderLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.UnitAmount(),
			Variants:  line.SelectedVariants,
		}
	}

	order := &model.Order{
		ID:              uuid.New(),
		CustomerName:    customerName,
		CustomerMobile:  "",
		CustomerAddress: "Store Walk-in",
		Items:           items,
		TotalAmount:     b.Total(),
		Status:          model.OrderStatusCompleted,
		Source:          model.OrderSourcePOS,
		CreatedAt:       time.Now(),
	}

	if err := b.orderRepo.Create(ctx, order); err != nil {
		b.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to persist bill")
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}

	b.logger.Info().
		Str("order_id", order.ID.String()).
		Int("line_count", len(items)).
		Float64("total", order.TotalAmount).
		Msg("bill finalised")

	b.lines = nil
	return order, nil
}

// lineKey derives the bill-line identity: the product id alone when there is
// no selection, otherwise the id joined with the chosen labels in the
// product's dimension order.
func lineKey(p *model.Product, sel catalog.Selection) string {
	if len(sel) == 0 {
		return p.ID
	}

	labels := make([]string, 0, len(sel))
	for _, dim := range p.Variants {
		if label, ok := sel[dim.Type]; ok {
			labels = append(labels, label)
		}
	}
	return p.ID + "-" + strings.Join(labels, "-")
}

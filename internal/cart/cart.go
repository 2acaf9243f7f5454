package cart

import (
	"sort"

	"cottage-store/internal/catalog"
	"cottage-store/internal/model"

	"github.com/rs/zerolog"
)

// Item is one cart line: a product at one variant selection.
type Item struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Price            string            `json:"price"`
	Image            string            `json:"image"`
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selectedVariants,omitempty"`
}

// Cart owns a shopper session's line items. Two lines are the same entry iff
// the product id matches and the variant selections are equal irrespective of
// key order; equality of two absent selections also counts.
//
// Every mutation is written through to the Store so the session survives a
// restart. Cart is not safe for concurrent use; each session owns its own.
type Cart struct {
	items  []Item
	store  Store
	logger zerolog.Logger
}

// New builds a cart backed by store, loading whatever the store holds. A
// missing or corrupt payload starts an empty cart rather than failing.
func New(store Store, logger zerolog.Logger) *Cart {
	c := &Cart{
		store:  store,
		logger: logger.With().Str("component", "cart").Logger(),
	}

	items, err := store.Load()
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to load saved cart, starting empty")
		return c
	}
	c.items = items
	return c
}

// Add increments the quantity of the matching line, or appends a new line
// with quantity 1. An item without an id is rejected with a diagnostic and no
// state change; the cart must not enter an inconsistent state from malformed
// input.
func (c *Cart) Add(item Item) {
	if item.ID == "" {
		c.logger.Warn().Str("name", item.Name).Msg("rejecting cart item without id")
		return
	}

	for i := range c.items {
		if c.items[i].ID == item.ID && variantsEqual(c.items[i].SelectedVariants, item.SelectedVariants) {
			c.items[i].Quantity++
			c.persist()
			return
		}
	}

	item.Quantity = 1
	c.items = append(c.items, item)
	c.persist()
}

// AddProduct validates the shopper's dimension choices against the product
// and adds one line per selected combination at its resolved price. Every
// variant dimension of the product must carry at least one chosen label;
// otherwise model.ErrIncompleteSelection is returned and the cart is left
// unchanged. A product without variants adds a single plain line.
func (c *Cart) AddProduct(p *model.Product, choices []catalog.DimensionChoice) error {
	if len(p.Variants) == 0 {
		c.Add(Item{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Thumbnail()})
		return nil
	}

	chosen := make(map[string][]string, len(choices))
	for _, choice := range choices {
		if len(choice.Labels) > 0 {
			chosen[choice.Type] = choice.Labels
		}
	}
	complete := make([]catalog.DimensionChoice, 0, len(p.Variants))
	for _, dim := range p.Variants {
		labels, ok := chosen[dim.Type]
		if !ok {
			return model.ErrIncompleteSelection
		}
		complete = append(complete, catalog.DimensionChoice{Type: dim.Type, Labels: labels})
	}

	for _, sel := range catalog.Combinations(complete) {
		price, _ := catalog.ResolvePrice(p, sel)
		c.Add(Item{
			ID:               p.ID,
			Name:             p.Name,
			Price:            price,
			Image:            p.Thumbnail(),
			SelectedVariants: sel,
		})
	}
	return nil
}

// Remove deletes the one line matching both id and variant selection.
// A non-matching selection leaves the cart untouched.
func (c *Cart) Remove(id string, variants map[string]string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID == id && variantsEqual(item.SelectedVariants, variants) {
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	c.persist()
}

// SetQuantity sets the quantity on the matching line, clamped to a minimum of
// zero. Interpreting zero as removal is left to the caller.
func (c *Cart) SetQuantity(id string, variants map[string]string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	for i := range c.items {
		if c.items[i].ID == id && variantsEqual(c.items[i].SelectedVariants, variants) {
			c.items[i].Quantity = quantity
		}
	}
	c.persist()
}

// Clear empties the cart and its persisted copy.
func (c *Cart) Clear() {
	c.items = nil
	if err := c.store.Clear(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to clear persisted cart")
	}
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Count sums quantities across all lines.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Total sums price * quantity across all lines. Price strings are parsed
// tolerantly, so currency symbols and thousands separators are accepted; an
// unparseable price contributes zero.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		price, err := catalog.ParsePrice(item.Price)
		if err != nil {
			continue
		}
		total += price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) persist() {
	if err := c.store.Save(c.items); err != nil {
		c.logger.Warn().Err(err).Msg("failed to persist cart")
	}
}

// variantsEqual compares selections in canonical form (sorted keys), so key
// insertion order never matters. A nil selection and an empty non-nil one are
// deliberately interchangeable: selections round-trip through JSON with
// omitempty, which collapses {} to absent, so distinguishing the two would
// make line identity depend on whether the cart was reloaded in between.
func variantsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		bv, ok := b[k]
		if !ok || a[k] != bv {
			return false
		}
	}
	return true
}

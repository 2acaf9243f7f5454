package cart

import (
	"os"
	"path/filepath"
	"testing"

	"cottage-store/internal/catalog"
	"cottage-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) *Cart {
	t.Helper()
	return New(NewMemoryStore(), zerolog.Nop())
}

func TestCart_AddMergesSameSelection(t *testing.T) {
	c := newTestCart(t)

	item := Item{
		ID:               "P001",
		Name:             "Brass Idol",
		Price:            "2499",
		SelectedVariants: map[string]string{"Size": "Medium", "Color": "Gold"},
	}

	c.Add(item)
	// Same selection built in a different key order must merge.
	c.Add(Item{
		ID:               "P001",
		Name:             "Brass Idol",
		Price:            "2499",
		SelectedVariants: map[string]string{"Color": "Gold", "Size": "Medium"},
	})

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCart_AddDistinctSelectionsSplitLines(t *testing.T) {
	c := newTestCart(t)

	c.Add(Item{ID: "P001", SelectedVariants: map[string]string{"Size": "M"}})
	c.Add(Item{ID: "P001", SelectedVariants: map[string]string{"Size": "L"}})
	c.Add(Item{ID: "P001"})

	assert.Len(t, c.Items(), 3)
	assert.Equal(t, 3, c.Count())
}

func TestCart_AddRejectsMissingID(t *testing.T) {
	c := newTestCart(t)

	c.Add(Item{Name: "orphan"})

	assert.Empty(t, c.Items())
}

func TestCart_AddProductExpandsCombinations(t *testing.T) {
	c := newTestCart(t)
	p := &model.Product{
		ID:    "P001",
		Name:  "Brass Idol",
		Price: "2499",
		Variants: []model.VariantDimension{
			{Type: "Size", Options: []model.VariantOption{{Label: "Medium", Price: "2499"}, {Label: "Large", Price: "4499"}}},
			{Type: "Finish", Options: []model.VariantOption{{Label: "Antique"}, {Label: "Polished"}}},
		},
	}

	err := c.AddProduct(p, []catalog.DimensionChoice{
		{Type: "Size", Labels: []string{"Medium", "Large"}},
		{Type: "Finish", Labels: []string{"Antique"}},
	})
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, map[string]string{"Size": "Medium", "Finish": "Antique"}, items[0].SelectedVariants)
	assert.Equal(t, "2499", items[0].Price)
	assert.Equal(t, map[string]string{"Size": "Large", "Finish": "Antique"}, items[1].SelectedVariants)
	assert.Equal(t, "4499", items[1].Price)
}

func TestCart_AddProductRejectsIncompleteSelection(t *testing.T) {
	c := newTestCart(t)
	p := &model.Product{
		ID:    "P001",
		Name:  "Brass Idol",
		Price: "2499",
		Variants: []model.VariantDimension{
			{Type: "Size", Options: []model.VariantOption{{Label: "Medium"}, {Label: "Large"}}},
			{Type: "Finish", Options: []model.VariantOption{{Label: "Antique"}, {Label: "Polished"}}},
		},
	}

	err := c.AddProduct(p, []catalog.DimensionChoice{{Type: "Size", Labels: []string{"Large"}}})

	assert.ErrorIs(t, err, model.ErrIncompleteSelection)
	assert.Empty(t, c.Items())
}

func TestCart_AddProductWithoutVariants(t *testing.T) {
	c := newTestCart(t)

	err := c.AddProduct(&model.Product{ID: "P002", Name: "Diya", Price: "249"}, nil)
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Nil(t, items[0].SelectedVariants)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCart_RemoveMatchesIDAndVariants(t *testing.T) {
	c := newTestCart(t)

	c.Add(Item{ID: "P001"})
	c.Add(Item{ID: "P001", SelectedVariants: map[string]string{"Size": "M"}})

	// Non-matching variant map leaves both lines untouched.
	c.Remove("P001", map[string]string{"Size": "L"})
	assert.Len(t, c.Items(), 2)

	// Both sides absent counts as a match.
	c.Remove("P001", nil)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, map[string]string{"Size": "M"}, items[0].SelectedVariants)
}

func TestCart_SetQuantityClampsAtZero(t *testing.T) {
	c := newTestCart(t)
	c.Add(Item{ID: "P001"})

	c.SetQuantity("P001", nil, 5)
	assert.Equal(t, 5, c.Items()[0].Quantity)

	c.SetQuantity("P001", nil, -3)
	assert.Equal(t, 0, c.Items()[0].Quantity)
}

func TestCart_TotalToleratesFormattedPrices(t *testing.T) {
	c := newTestCart(t)

	c.Add(Item{ID: "P001", Price: "₹1,499"})
	c.Add(Item{ID: "P001", Price: "₹1,499"})
	c.Add(Item{ID: "P002", Price: "999"})

	assert.Equal(t, 3997.0, c.Total())
	assert.Equal(t, 3, c.Count())
}

func TestCart_TotalSkipsUnparseablePrice(t *testing.T) {
	c := newTestCart(t)

	c.Add(Item{ID: "P001", Price: "call us"})
	c.Add(Item{ID: "P002", Price: "100"})

	assert.Equal(t, 100.0, c.Total())
}

// Full flow: product with Size(S:100, M:150) and Color(Red, Blue), two adds
// of {Size:M, Color:Red} yield one line, quantity 2, unit price 150.
func TestCart_EndToEndVariantFlow(t *testing.T) {
	c := newTestCart(t)

	line := Item{
		ID:               "P100",
		Name:             "Lamp",
		Price:            "150",
		SelectedVariants: map[string]string{"Size": "M", "Color": "Red"},
	}
	c.Add(line)
	c.Add(line)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "150", items[0].Price)
	assert.Equal(t, 300.0, c.Total())
}

func TestCart_PersistsAcrossInstances(t *testing.T) {
	store := NewMemoryStore()

	c := New(store, zerolog.Nop())
	c.Add(Item{ID: "P001", Price: "100", SelectedVariants: map[string]string{"Size": "M"}})
	c.Add(Item{ID: "P001", Price: "100", SelectedVariants: map[string]string{"Size": "M"}})

	reloaded := New(store, zerolog.Nop())
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	reloaded.Clear()
	assert.Empty(t, New(store, zerolog.Nop()).Items())
}

func TestFileStore_RoundTripAndCorruptPayload(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	c := New(store, zerolog.Nop())
	c.Add(Item{ID: "P001", Price: "100"})

	reloaded := New(store, zerolog.Nop())
	require.Len(t, reloaded.Items(), 1)

	// A corrupt payload starts an empty cart instead of failing.
	require.NoError(t, os.WriteFile(filepath.Join(dir, StorageKey+".json"), []byte("{not json"), 0o644))
	broken := New(store, zerolog.Nop())
	assert.Empty(t, broken.Items())
}

func TestVariantsEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     map[string]string
		expected bool
	}{
		{name: "Both nil", a: nil, b: nil, expected: true},
		{name: "Nil vs empty", a: nil, b: map[string]string{}, expected: true},
		{name: "One nil", a: map[string]string{"Size": "M"}, b: nil, expected: false},
		{
			name:     "Same pairs any key order",
			a:        map[string]string{"Size": "M", "Color": "Red"},
			b:        map[string]string{"Color": "Red", "Size": "M"},
			expected: true,
		},
		{
			name:     "Different value",
			a:        map[string]string{"Size": "M"},
			b:        map[string]string{"Size": "L"},
			expected: false,
		},
		{
			name:     "Different keys same length",
			a:        map[string]string{"Size": "M"},
			b:        map[string]string{"Color": "M"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, variantsEqual(tt.a, tt.b))
		})
	}
}

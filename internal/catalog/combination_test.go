package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinations_SingleDimension(t *testing.T) {
	combos := Combinations([]DimensionChoice{
		{Type: "Size", Labels: []string{"S", "M", "L"}},
	})

	assert.Equal(t, []Selection{
		{"Size": "S"},
		{"Size": "M"},
		{"Size": "L"},
	}, combos)
}

// First dimension varies slowest: the running list is expanded against each
// subsequent dimension in input order.
func TestCombinations_CartesianOrder(t *testing.T) {
	combos := Combinations([]DimensionChoice{
		{Type: "D1", Labels: []string{"a", "b"}},
		{Type: "D2", Labels: []string{"x"}},
	})

	assert.Len(t, combos, 2)
	assert.Equal(t, []Selection{
		{"D1": "a", "D2": "x"},
		{"D1": "b", "D2": "x"},
	}, combos)
}

func TestCombinations_MultiSelectExpansion(t *testing.T) {
	combos := Combinations([]DimensionChoice{
		{Type: "Size", Labels: []string{"S", "M"}},
		{Type: "Color", Labels: []string{"Red", "Blue"}},
	})

	assert.Equal(t, []Selection{
		{"Size": "S", "Color": "Red"},
		{"Size": "S", "Color": "Blue"},
		{"Size": "M", "Color": "Red"},
		{"Size": "M", "Color": "Blue"},
	}, combos)
}

// An empty dimension means the shopper has not picked an option for every
// type yet; the whole expansion is withheld rather than the dimension
// silently dropped.
func TestCombinations_EmptyDimensionSentinel(t *testing.T) {
	combos := Combinations([]DimensionChoice{
		{Type: "D1", Labels: []string{"a"}},
		{Type: "D2", Labels: nil},
	})
	assert.Empty(t, combos)

	combos = Combinations([]DimensionChoice{
		{Type: "D1", Labels: nil},
		{Type: "D2", Labels: []string{"x"}},
	})
	assert.Empty(t, combos)
}

func TestCombinations_NoDimensions(t *testing.T) {
	assert.Empty(t, Combinations(nil))
}

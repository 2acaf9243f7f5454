package catalog

import (
	"math"
	"strconv"
	"strings"

	"cottage-store/internal/model"
)

// Selection maps a variant dimension type to the single chosen option label.
type Selection map[string]string

// ResolvePrice computes the effective unit price and effective original (MRP)
// price for a product under a concrete variant selection.
//
// Both start at the product's base values. Dimensions are walked in the
// product's variant list order; when the selected option of a dimension
// carries an override, the override replaces the running value outright. So
// when several dimensions carry overrides, the last dimension in list order
// wins. Unknown dimension types in the selection are ignored. A product
// without variants resolves to its base prices unchanged.
//
// Duplicate dimension type labels are not rejected: the later occurrence is
// processed later and therefore wins.
func ResolvePrice(p *model.Product, sel Selection) (price, originalPrice string) {
	price = p.Price
	originalPrice = p.OriginalPrice

	for _, dim := range p.Variants {
		label, ok := sel[dim.Type]
		if !ok {
			continue
		}
		for _, opt := range dim.Options {
			if opt.Label != label {
				continue
			}
			if opt.Price != "" {
				price = opt.Price
			}
			if opt.OriginalPrice != "" {
				originalPrice = opt.OriginalPrice
			}
			break
		}
	}

	return price, originalPrice
}

// PercentOff derives the struck-through discount badge value:
// round(100 * (original - price) / original). The second return is false when
// no original price is present or it is not numerically greater than the
// effective price; callers simply do not render the badge in that case.
func PercentOff(originalPrice, price string) (int, bool) {
	o, err := ParsePrice(originalPrice)
	if err != nil {
		return 0, false
	}
	p, err := ParsePrice(price)
	if err != nil {
		return 0, false
	}
	if o <= p {
		return 0, false
	}
	return int(math.Round(100 * (o - p) / o)), true
}

// ParsePrice parses a tolerant decimal price string: every rune that is not a
// digit or a decimal point is stripped before parsing, so currency symbols
// and thousands separators are accepted.
func ParsePrice(s string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
	return strconv.ParseFloat(cleaned, 64)
}

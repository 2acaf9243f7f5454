package model

import (
	"encoding/json"
	"time"
)

// Product represents a catalogue product. Price fields are decimal strings
// because the storefront renders and compares them as text; numeric
// interpretation happens in the catalog package.
type Product struct {
	ID            string             `json:"id" db:"id"`
	Name          string             `json:"name" db:"name"`
	Price         string             `json:"price" db:"price"`
	OriginalPrice string             `json:"originalPrice,omitempty" db:"original_price"`
	Images        []string           `json:"images" db:"images"`
	Badge         string             `json:"badge,omitempty" db:"badge"`
	BadgeColor    string             `json:"badgeColor,omitempty" db:"badge_color"`
	Materials     []string           `json:"materials,omitempty" db:"materials"`
	Tagline       string             `json:"tagline,omitempty" db:"tagline"`
	Description   string             `json:"description,omitempty" db:"description"`
	Category      string             `json:"category" db:"-"`
	CategoryID    string             `json:"-" db:"category_id"`
	Variants      []VariantDimension `json:"variants,omitempty" db:"variants"`
	CreatedAt     time.Time          `json:"createdAt" db:"created_at"`
}

// Thumbnail returns the product's primary image, or empty if none.
func (p *Product) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// VariantDimension is one named axis of product customisation (e.g. "Size")
// with an ordered list of selectable options.
type VariantDimension struct {
	Type    string          `json:"type"`
	Options []VariantOption `json:"options"`
}

// VariantOption is a single selectable value. Price and OriginalPrice, when
// present, are absolute overrides that replace the product's base prices for
// a selection that includes this option.
type VariantOption struct {
	Label         string `json:"label"`
	Price         string `json:"price,omitempty"`
	OriginalPrice string `json:"originalPrice,omitempty"`
}

// UnmarshalJSON accepts either a bare string label or the structured form.
// Stored variant data mixes both shapes.
func (o *VariantOption) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		*o = VariantOption{Label: label}
		return nil
	}

	type plain VariantOption
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = VariantOption(v)
	return nil
}

// MarshalJSON writes the bare-string form when the option carries no
// overrides, so unstructured options round-trip unchanged.
func (o VariantOption) MarshalJSON() ([]byte, error) {
	if o.Price == "" && o.OriginalPrice == "" {
		return json.Marshal(o.Label)
	}

	type plain VariantOption
	return json.Marshal(plain(o))
}

package model

import "time"

// Category groups products for browsing. Products reference a category by ID
// in the database; the display name on Product is resolved at fetch time.
type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

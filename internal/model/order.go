package model

import (
	"time"

	"github.com/google/uuid"
)

// Order sources.
const (
	OrderSourceWeb = "web"
	OrderSourcePOS = "pos"
)

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// Order is an immutable record of a web checkout or an in-person bill.
type Order struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	CustomerName    string      `json:"customerName" db:"customer_name"`
	CustomerMobile  string      `json:"customerMobile" db:"customer_mobile"`
	CustomerAddress string      `json:"customerAddress" db:"customer_address"`
	Items           []OrderLine `json:"items" db:"items"`
	TotalAmount     float64     `json:"totalAmount" db:"total_amount"`
	Status          string      `json:"status" db:"status"`
	Source          string      `json:"source" db:"source"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}

// OrderLine is one purchased line item, with the price resolved at the time
// of purchase (including any POS operator override).
type OrderLine struct {
	ProductID string            `json:"id"`
	Name      string            `json:"name"`
	Quantity  int               `json:"quantity"`
	Price     float64           `json:"price"`
	Variants  map[string]string `json:"variants,omitempty"`
}

// CheckoutRequest is the payload accepted by POST /api/checkout.
type CheckoutRequest struct {
	Name    string         `json:"name"`
	Mobile  string         `json:"mobile"`
	Address string         `json:"address"`
	Email   string         `json:"email"`
	Items   []CheckoutItem `json:"items"`
	Total   float64        `json:"total"`
}

// CheckoutItem is one cart line as submitted by the storefront.
type CheckoutItem struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Price    string            `json:"price"`
	Quantity int               `json:"quantity"`
	Variants map[string]string `json:"selectedVariants,omitempty"`
}

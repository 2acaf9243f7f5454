package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeMissingField        = "MISSING_FIELD"
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeCategoryNotFound    = "CATEGORY_NOT_FOUND"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeIncompleteSelection = "INCOMPLETE_SELECTION"
	ErrCodeEmptyBill           = "EMPTY_BILL"
	ErrCodeMissingCustomer     = "MISSING_CUSTOMER"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// DomainError is a validation or business-rule failure that maps to a 4xx
// response. Backend failures are plain wrapped errors.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound     = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrCategoryNotFound    = NewDomainError(ErrCodeCategoryNotFound, "Category not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrIncompleteSelection = NewDomainError(ErrCodeIncompleteSelection, "Select an option for every type")
	ErrEmptyBill           = NewDomainError(ErrCodeEmptyBill, "Cart is empty")
	ErrMissingCustomer     = NewDomainError(ErrCodeMissingCustomer, "Enter customer name")
	ErrMissingField        = NewDomainError(ErrCodeMissingField, "All fields are required")
)

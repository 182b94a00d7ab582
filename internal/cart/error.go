package cart

import "errors"

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrItemNotFound    = errors.New("cart item not found")
)

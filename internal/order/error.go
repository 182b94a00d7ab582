package order

import (
	"errors"
	"fmt"
)

var (
	// -- Validation & Input --
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// VerificationRequiredError rejects order placement for users whose latest
// verification status is anything but verified. The status travels with
// the error so the client can guide the user.
type VerificationRequiredError struct {
	Status string
}

func (e *VerificationRequiredError) Error() string {
	return fmt.Sprintf("account verification required (status: %s)", e.Status)
}

// InsufficientStockError covers both the upfront stock check and the race
// where the conditional decrement touches no row.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: available %d, requested %d", e.Available, e.Requested)
}

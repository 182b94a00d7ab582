package feedback

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields = errors.New("missing required fields")
	ErrMissingRating = errors.New("product and delivery ratings are required")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
)

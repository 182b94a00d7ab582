package earnings

import "errors"

var (
	// -- Validation & Input --
	ErrMissingUserID      = errors.New("user ID is required")
	ErrInvalidEarningType = errors.New("invalid earning type")
	ErrInvalidPoints      = errors.New("points must not be negative")

	// -- Resource State --
	ErrClaimNotAvailable = errors.New("daily claim not yet available")
)

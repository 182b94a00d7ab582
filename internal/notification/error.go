package notification

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
)

package address

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
)

package favorites

import "errors"

var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrAlreadyFavorited = errors.New("product already in favorites")
	ErrNotFound         = errors.New("favorite not found")
)

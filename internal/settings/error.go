package settings

import "errors"

var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrInvalidRate     = errors.New("conversion rate must be greater than zero")
)

package access

import "errors"

var (
	ErrMissingKey = errors.New("Missing key")
	ErrInvalidKey = errors.New("Invalid key")
)

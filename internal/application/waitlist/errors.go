package waitlist

import "errors"

var (
	ErrInvalidEmail  = errors.New("Invalid Email")
	ErrNotConfigured = errors.New("Waitlist unavailable")
)

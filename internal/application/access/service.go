package access

import (
	"strings"
)

// DefaultRedirect is where a visitor lands after the gate when no target was requested.
const DefaultRedirect = "/explorer"

// Service validates the shared beta secret. There are no accounts: every accepted
// visitor receives the same credential.
type Service struct {
	Secret string
}

// Validate checks a submitted secret. Surrounding whitespace is ignored; the comparison
// is otherwise exact and case-sensitive.
func (s *Service) Validate(secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ErrMissingKey
	}
	if s.Secret == "" || secret != s.Secret {
		return ErrInvalidKey
	}
	return nil
}

// SafeRedirect returns target when it is a local absolute path, DefaultRedirect otherwise.
// Protocol-relative ("//host") and backslash forms are rejected so the gate page cannot
// forward off-site.
func SafeRedirect(target string) string {
	target = strings.TrimSpace(target)
	if target == "" || !strings.HasPrefix(target, "/") {
		return DefaultRedirect
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") || strings.ContainsAny(target, "\r\n") {
		return DefaultRedirect
	}
	return target
}

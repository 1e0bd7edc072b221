package middleware

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// BetaGatePath is the public page that collects the shared secret.
const BetaGatePath = "/beta"

// ProtectedPrefixes lists the areas that require beta access. Matching is
// segment-bounded: "/map" covers "/map" and "/map/x" but not "/mapping".
var ProtectedPrefixes = []string{
	"/explorer",
	"/chat",
	"/projects",
	"/map",
	"/project",
	"/country",
	"/submit",
	"/about",
}

// IsProtectedPath classifies a request path. It depends on the path string only.
func IsProtectedPath(path string) bool {
	for _, prefix := range ProtectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// BetaGate forwards public traffic untouched and sends visitors without the
// credential on protected paths to the gate page, remembering where they were going.
func BetaGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if !IsProtectedPath(path) {
			return c.Next()
		}
		if HasBetaAccess(c) {
			return c.Next()
		}
		log.Debug().Str("trace_id", GetTraceID(c)).Str("path", path).Msg("beta gate: redirecting visitor without access")
		return c.Redirect(BetaRedirectURL(path), fiber.StatusTemporaryRedirect)
	}
}

// BetaRedirectURL builds /beta?redirect=<path>.
func BetaRedirectURL(path string) string {
	return BetaGatePath + "?" + url.Values{"redirect": {path}}.Encode()
}

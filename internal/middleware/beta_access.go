package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	BetaCookieName   = "beta_access"
	betaCookieValue  = "granted"
	betaCookieMaxAge = 30 * 24 * time.Hour
)

// BetaCookieConfig returns the credential cookie. The value is the same for every
// visitor; it is a capability flag, not a session.
func BetaCookieConfig() fiber.Cookie {
	return fiber.Cookie{
		Name:     BetaCookieName,
		Value:    betaCookieValue,
		Path:     "/",
		MaxAge:   int(betaCookieMaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	}
}

// GrantBetaAccess sets the credential cookie on the response.
func GrantBetaAccess(c *fiber.Ctx) {
	cookie := BetaCookieConfig()
	c.Cookie(&cookie)
}

// HasBetaAccess reports whether the request carries the credential. Absent or
// mismatched cookies are simply false.
func HasBetaAccess(c *fiber.Ctx) bool {
	return c.Cookies(BetaCookieName) == betaCookieValue
}

// RevokeBetaAccess expires the credential cookie. Safe to call when it is absent.
func RevokeBetaAccess(c *fiber.Ctx) {
	cookie := BetaCookieConfig()
	cookie.Value = ""
	cookie.MaxAge = 0
	cookie.Expires = time.Unix(0, 0)
	c.Cookie(&cookie)
}

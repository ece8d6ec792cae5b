package session

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/liberiadate/liberiadate/internal/pkg/env"
)

// CookieName carries the admin session token.
const CookieName = "liberiaDateAdminSession"

// TokenFromRequest extracts the session token from the request cookie.
func TokenFromRequest(c *fiber.Ctx) string {
	return c.Cookies(CookieName)
}

// SetCookie (re-)issues the session cookie with a full TTL. Called on login,
// setup and every authenticated request so the browser expiry tracks the
// registry's sliding window.
func SetCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(DefaultTTL / time.Second),
		HTTPOnly: true,
		Secure:   !env.IsDev(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie immediately.
func ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   !env.IsDev(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

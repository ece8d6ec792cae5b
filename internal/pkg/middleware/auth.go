package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/liberiadate/liberiadate/internal/pkg/session"
)

// RequireAdminAuth validates the admin session cookie and returns JSON 401
// when it is missing, unknown or expired. On success the cookie is re-issued
// with a refreshed expiry before the handler runs.
func RequireAdminAuth(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := session.TokenFromRequest(c)
		if token == "" || !store.Validate(token) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Admin authentication required.",
			})
		}
		session.SetCookie(c, token)
		return c.Next()
	}
}

package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// jsonError writes the shared JSON error payload.
func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// publicBaseURL resolves the externally visible base URL for redirect targets
// (checkout success/cancel pages). Falls back to the request's own origin.
func publicBaseURL(c *fiber.Ctx, configured string) string {
	if configured != "" {
		return configured
	}
	return c.Protocol() + "://" + c.Hostname()
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired gates the mutating routes behind the shared admin secret.
// The token travels in X-Admin-Token, or in Authorization as a bearer token
// when the dedicated header is absent. Anything else stops here with a 401
// before the wrapped handler runs.
func AdminRequired(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := c.Get("X-Admin-Token")
		if got == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				got = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			}
		}
		if got == "" || got != token {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}

package controllers

import "github.com/gofiber/fiber/v2"

// Health answers the probe without touching either database pool.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

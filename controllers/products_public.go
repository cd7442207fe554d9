package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"catalog/store"
)

// ====================
// ดึงรายการสินค้า (อ่านจาก replica)
// ====================
func GetProducts(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", 100)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit/offset must be integers"})
		}
		offset, err := queryInt(c, "offset", 0)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit/offset must be integers"})
		}

		products, err := st.List(c.Context(), limit, offset)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":  "failed to query replica",
				"detail": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"products": products})
	}
}

// queryInt reads a pagination param. The default applies only when the key
// is absent; a present value must parse as an integer, surrounding
// whitespace allowed, so "?limit=" is rejected rather than defaulted.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	if !c.Context().QueryArgs().Has(key) {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(c.Query(key)))
}

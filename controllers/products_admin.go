package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"catalog/models"
	"catalog/store"
)

// ====================
// เพิ่มสินค้า (เขียนลง primary)
// ====================
func CreateProduct(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, ok := parseBody(c)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing json body"})
		}

		name, ok := stringField(body, "product_name")
		if !ok || name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_name required"})
		}
		price, err := models.CoerceInt(body["price"])
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price must be an integer"})
		}
		image, ok := optionalStringField(body, "product_image_url")
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_image_url must be a string"})
		}

		created, err := st.Create(c.Context(), models.NewProduct{Name: name, Price: price, ImageURL: image})
		if err != nil {
			if errors.Is(err, store.ErrNoRowReturned) {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "insert failed"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":  "failed to insert",
				"detail": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"product": created})
	}
}

// ====================
// แก้ไขสินค้าบางฟิลด์ (เขียนลง primary)
// ====================
func UpdateProduct(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("product_id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}

		body, ok := parseBody(c)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing json body"})
		}

		var patch models.ProductPatch
		if raw, present := body["product_name"]; present {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil || s == "" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_name must be a non-empty string"})
			}
			patch.Name = &s
		}
		if raw, present := body["price"]; present {
			n, err := models.CoerceInt(raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price must be integer"})
			}
			patch.Price = &n
		}
		if _, present := body["product_image_url"]; present {
			img, ok := optionalStringField(body, "product_image_url")
			if !ok {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_image_url must be a string"})
			}
			patch.ImageURL = img
			patch.SetImage = true
		}

		if patch.Empty() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no updatable fields provided"})
		}

		updated, err := st.Update(c.Context(), id, patch)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":  "failed to update",
				"detail": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"product": updated})
	}
}

// parseBody parses the request body as a JSON object regardless of content
// type. Missing, unparsable, and empty objects all count as absent.
func parseBody(c *fiber.Ctx) (map[string]json.RawMessage, bool) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &body); err != nil || len(body) == 0 {
		return nil, false
	}
	return body, true
}

// stringField reports ok only when the key holds a JSON string.
func stringField(body map[string]json.RawMessage, key string) (string, bool) {
	raw, present := body[key]
	if !present {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// optionalStringField treats an absent key and an explicit null the same
// way. ok is false only when the key holds something that is neither a
// string nor null.
func optionalStringField(body map[string]json.RawMessage, key string) (*string, bool) {
	raw, present := body[key]
	if !present || string(raw) == "null" {
		return nil, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return &s, true
}

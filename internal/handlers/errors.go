package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"warehouse/internal/repositories"
	"warehouse/internal/validation"
)

// respondError maps the error taxonomy to HTTP responses. Validation
// failures carry the full list of offending fields; everything else maps to
// a short machine-readable message that leaks no implementation detail.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *validation.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  vErr.Errors,
		})
	case errors.Is(err, repositories.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	case errors.Is(err, repositories.ErrDuplicateSKU):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "A product with this SKU already exists",
			"errors": []validation.FieldError{
				{Field: "sku", Message: "sku must be unique"},
			},
		})
	case errors.Is(err, repositories.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Not enough stock to complete the purchase",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}

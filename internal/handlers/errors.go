package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"catalog/internal/models"
)

// respondError maps a service error onto an HTTP response. The caller
// gets the domain message for validation/not-found/conflict kinds; a
// storage failure stays a generic 500 with the detail logged.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationErr.Message,
		})
	}

	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundErr.Error(),
		})
	}

	var conflictErr *models.ConflictError
	if errors.As(err, &conflictErr) {
		resp := fiber.Map{
			"message": conflictErr.Message,
		}
		if conflictErr.BlockingProducts > 0 {
			resp["productsCount"] = conflictErr.BlockingProducts
			// Blocked deletions answer 400 rather than 409: the request
			// itself is invalid while the products remain.
			return c.Status(fiber.StatusBadRequest).JSON(resp)
		}
		return c.Status(fiber.StatusConflict).JSON(resp)
	}

	log.Printf("Internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

package handlers

import (
	"errors"

	"scheme-navigator/internal/service"

	"github.com/gofiber/fiber/v2"
)

// writeError maps service errors onto HTTP statuses.
func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, service.ErrUnknownCategory):
		status, message = fiber.StatusNotFound, "Category not found"
	case errors.Is(err, service.ErrUnparsableCollaboratorOutput):
		status, message = fiber.StatusBadGateway, "Failed to generate recommendations"
	case errors.Is(err, service.ErrCollaboratorUnavailable):
		status, message = fiber.StatusServiceUnavailable, "Recommendation service unavailable"
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

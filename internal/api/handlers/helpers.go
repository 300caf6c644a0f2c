package handlers

import (
	"errors"

	"github.com/draftdeck/draftdeck/internal/service"
	"github.com/gofiber/fiber/v2"
)

// errStatus maps the service sentinels onto HTTP statuses so callers can
// tell a missing record from a guard failure.
func errStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrValidationFailed):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidTransition):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errJSON(c *fiber.Ctx, err error) error {
	return c.Status(errStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

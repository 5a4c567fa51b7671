package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cradle/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// periodServiceAPIError maps service errors to HTTP responses. Validation
// messages are passed through; storage details are not.
func periodServiceAPIError(c *fiber.Ctx, err error) error {
	switch {
	case services.IsPeriodInputError(err):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPeriodEntryNotFound):
		return apiError(c, fiber.StatusNotFound, "period entry not found")
	case errors.Is(err, services.ErrPeriodEntryCreateFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to save period entry")
	case errors.Is(err, services.ErrPeriodEntryDeleteFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to delete period entry")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to load period entries")
	}
}

func setAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cradle/internal/models"
	"github.com/terraincognita07/cradle/internal/services"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) ListPeriods(c *fiber.Ctx) error {
	entries, err := handler.periodService.ListEntries()
	if err != nil {
		return periodServiceAPIError(c, err)
	}
	return c.JSON(fiber.Map{"entries": entries})
}

func (handler *Handler) CreatePeriod(c *fiber.Ctx) error {
	input := services.PeriodEntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.periodService.AddEntry(input)
	if err != nil {
		if !services.IsPeriodInputError(err) {
			handler.logger.Error().Err(err).Msg("create period entry")
		}
		return periodServiceAPIError(c, err)
	}

	handler.logger.Info().Str("entry_id", entry.ID).Str("start_date", entry.StartDate.String()).Msg("period entry created")
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) GetPeriod(c *fiber.Ctx) error {
	entry, err := handler.periodService.FindEntry(c.Params("id"))
	if err != nil {
		return periodServiceAPIError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) DeletePeriod(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := handler.periodService.DeleteEntry(id); err != nil {
		return periodServiceAPIError(c, err)
	}

	handler.logger.Info().Str("entry_id", id).Msg("period entry deleted")
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) GetSymptoms(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"symptoms": models.DefaultPeriodSymptoms()})
}

package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cradle/internal/caldate"
)

func (handler *Handler) GetCycle(c *fiber.Ctx) error {
	overview, err := handler.periodService.Overview(handler.today())
	if err != nil {
		return periodServiceAPIError(c, err)
	}
	return c.JSON(overview)
}

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	today := handler.today()
	year, month := today.Year(), today.Month()

	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid month, expected YYYY-MM")
		}
		year, month = parsed.Year(), parsed.Month()
	}

	calendar, err := handler.periodService.Calendar(year, month, today)
	if err != nil {
		return periodServiceAPIError(c, err)
	}
	return c.JSON(calendar)
}

func (handler *Handler) GetCalendarDay(c *fiber.Ctx) error {
	day, err := caldate.Parse(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	class, err := handler.periodService.ClassifyDate(day)
	if err != nil {
		return periodServiceAPIError(c, err)
	}
	return c.JSON(fiber.Map{
		"date":  day,
		"class": class,
	})
}

package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cradle/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	summary, err := handler.exportService.BuildSummary()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load period entries")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	rows, err := handler.exportService.BuildRows()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load period entries")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range rows {
		if err := writer.Write(row.Columns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setAttachmentHeaders(c, "text/csv", buildExportFilename(handler.now().In(handler.location), "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	rows, err := handler.exportService.BuildRows()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load period entries")
	}
	now := handler.now().In(handler.location)

	serialized, err := json.MarshalIndent(fiber.Map{
		"exported_at": now.Format(time.RFC3339),
		"entries":     rows,
	}, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(now, "json"))
	return c.Send(serialized)
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("cradle-export-%s.%s", now.Format("2006-01-02"), extension)
}

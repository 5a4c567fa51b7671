package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", handler.BearerAuth)

	periods := api.Group("/periods")
	periods.Get("", handler.ListPeriods)
	periods.Post("", handler.CreatePeriod)
	periods.Get("/:id", handler.GetPeriod)
	periods.Delete("/:id", handler.DeletePeriod)

	api.Get("/cycle", handler.GetCycle)

	calendar := api.Group("/calendar")
	calendar.Get("", handler.GetCalendar)
	calendar.Get("/day/:date", handler.GetCalendarDay)

	api.Get("/symptoms", handler.GetSymptoms)

	export := api.Group("/export")
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)
}

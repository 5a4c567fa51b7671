package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// NewApp builds the fiber application with the standard middleware chain.
func NewApp(handler *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Cradle",
		DisableStartupMessage: true,
		ErrorHandler:          newJSONErrorHandler(handler.logger),
	})

	app.Use(recover.New())
	app.Use(RequestLogger(handler.logger))
	app.Use(compress.New())

	RegisterRoutes(app, handler)
	app.Use(func(c *fiber.Ctx) error {
		return apiError(c, fiber.StatusNotFound, "not found")
	})
	return app
}

// newJSONErrorHandler renders handler errors as {"error": ...} and logs
// server-side failures under the request id set by RequestLogger.
func newJSONErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "internal error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			message = fiberErr.Message
		}
		if status >= fiber.StatusInternalServerError {
			requestID, _ := c.Locals(requestIDLocalKey).(string)
			logger.Error().
				Err(err).
				Str("request_id", requestID).
				Str("path", c.Path()).
				Msg("request failed")
		}
		return apiError(c, status, message)
	}
}

package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const bearerPrefix = "bearer "

// BearerAuth requires a valid token on every request when auth is enabled.
// Repeated invalid tokens from one address are answered with 429.
func (handler *Handler) BearerAuth(c *fiber.Ctx) error {
	if handler.tokens == nil {
		return c.Next()
	}

	key := requestLimiterKey(c)
	now := handler.now()
	if handler.tokenFailures.blocked(key, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many invalid tokens")
	}

	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if _, err := handler.tokens.Verify(header[len(bearerPrefix):]); err != nil {
		handler.tokenFailures.recordFailure(key, now)
		handler.logger.Warn().Str("remote_ip", key).Err(err).Msg("rejected bearer token")
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.tokenFailures.clear(key)
	return c.Next()
}

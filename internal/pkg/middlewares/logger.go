package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/prypal/backend/internal/constant"
)

func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		requestID, _ := c.Locals(constant.ContextKeyRequestID).(string)
		log.Info().
			Str("component", "httpreq").
			Str("request_id", requestID).
			Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("url", c.OriginalURL()).
			Str("user_agent", c.Get(fiber.HeaderUserAgent)).
			Int("status", c.Response().StatusCode()).
			Int("size", len(c.Response().Body())).
			Dur("duration", time.Since(start)).
			Msg("received request")

		return err
	}
}

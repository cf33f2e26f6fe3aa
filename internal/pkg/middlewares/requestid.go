package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"

	"github.com/prypal/backend/internal/constant"
)

// RequestID propagates an inbound request id or mints a new xid, so scans can
// be correlated across operator complaints and server logs.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(constant.RequestIDHeader)
		if id == "" {
			id = xid.New().String()
		}
		c.Locals(constant.ContextKeyRequestID, id)
		c.Set(constant.RequestIDHeader, id)
		return c.Next()
	}
}

package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/prypal/backend/internal/pkg/bininfo"
	"github.com/prypal/backend/internal/server/svr"
	"github.com/prypal/backend/internal/service"
)

type MetaController struct {
	fx.In

	HealthService *service.Health
}

func RegisterMeta(app *fiber.App, v1 *svr.V1, c MetaController) {
	v1.Get("/version", c.Version)

	app.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

func (c *MetaController) Version(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

func (c *MetaController) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"status": "ok",
	})
}

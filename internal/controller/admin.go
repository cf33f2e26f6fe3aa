package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/prypal/backend/internal/model/types"
	"github.com/prypal/backend/internal/pkg/rekuest"
	"github.com/prypal/backend/internal/server/svr"
	"github.com/prypal/backend/internal/service"
)

type AdminController struct {
	fx.In

	AdminService *service.Admin
}

func RegisterAdmin(admin *svr.Admin, c AdminController) {
	admin.Get("/settings/pallet-counter", c.GetPalletCounter)
	admin.Put("/settings/pallet-counter", c.SetPalletCounter)

	admin.Put("/materials/:materialCode", c.UpsertMaterial)

	admin.Post("/caches/purge", c.PurgeCaches)
}

func (c *AdminController) GetPalletCounter(ctx *fiber.Ctx) error {
	value, err := c.AdminService.GetPalletCounter(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"value": value,
	})
}

func (c *AdminController) SetPalletCounter(ctx *fiber.Ctx) error {
	var request types.UpdateCounterRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	if err := c.AdminService.SetPalletCounter(ctx.UserContext(), request.Value); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"value": request.Value,
	})
}

func (c *AdminController) UpsertMaterial(ctx *fiber.Ctx) error {
	var request types.UpsertMaterialRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	material, err := c.AdminService.UpsertMaterial(ctx.UserContext(), ctx.Params("materialCode"), &request)
	if err != nil {
		return err
	}

	return ctx.JSON(material)
}

func (c *AdminController) PurgeCaches(ctx *fiber.Ctx) error {
	return c.AdminService.PurgeCaches(ctx.UserContext())
}

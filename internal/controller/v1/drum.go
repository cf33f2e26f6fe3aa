package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prypal/backend/internal/app/appconfig"
	"github.com/prypal/backend/internal/constant"
	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/model/types"
	"github.com/prypal/backend/internal/pkg/rekuest"
	"github.com/prypal/backend/internal/pkg/scan"
	"github.com/prypal/backend/internal/server/svr"
	"github.com/prypal/backend/internal/service"
)

type Drum struct {
	Config          *appconfig.Config
	DrumService     *service.Drum
	MaterialService *service.Material
}

func RegisterDrum(v1 *svr.V1, conf *appconfig.Config, drumService *service.Drum, materialService *service.Material) {
	c := &Drum{
		Config:          conf,
		DrumService:     drumService,
		MaterialService: materialService,
	}

	v1.Get("/materials/:materialCode/drums", c.GetActiveDrums)
	v1.Post("/materials/:materialCode/drums", c.AppendDrum)
	v1.Delete("/materials/:materialCode/drums/last", c.UndoLastDrum)

	v1.Get("/drums/:drumNumber", c.GetDrumByNumber)
}

type activeDrumsResponse struct {
	Count int           `json:"count"`
	Drums []*model.Drum `json:"drums"`
}

func (c *Drum) GetActiveDrums(ctx *fiber.Ctx) error {
	material, err := c.MaterialService.GetMaterialByCode(ctx.UserContext(), ctx.Params("materialCode"))
	if err != nil {
		return err
	}

	drums, err := c.DrumService.ListActive(ctx.UserContext(), material.MaterialCode)
	if err != nil {
		return err
	}

	return ctx.JSON(activeDrumsResponse{
		Count: len(drums),
		Drums: drums,
	})
}

func (c *Drum) AppendDrum(ctx *fiber.Ctx) error {
	var request types.AppendDrumRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	material, err := c.MaterialService.GetMaterialByCode(ctx.UserContext(), ctx.Params("materialCode"))
	if err != nil {
		return err
	}

	sc, err := scan.Parse(request.Scan)
	if err != nil {
		return err
	}

	if request.DeviceID == "" {
		request.DeviceID = ctx.Get(constant.DeviceIDHeader, c.Config.DeviceID)
	}

	drum, err := c.DrumService.Append(ctx.UserContext(), material, sc, &request)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(drum)
}

func (c *Drum) UndoLastDrum(ctx *fiber.Ctx) error {
	material, err := c.MaterialService.GetMaterialByCode(ctx.UserContext(), ctx.Params("materialCode"))
	if err != nil {
		return err
	}

	drum, err := c.DrumService.UndoLast(ctx.UserContext(), material.MaterialCode)
	if err != nil {
		return err
	}

	return ctx.JSON(drum)
}

func (c *Drum) GetDrumByNumber(ctx *fiber.Ctx) error {
	drum, err := c.DrumService.GetByNumber(ctx.UserContext(), ctx.Params("drumNumber"))
	if err != nil {
		return err
	}
	return ctx.JSON(drum)
}

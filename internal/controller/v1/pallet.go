package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/model/types"
	"github.com/prypal/backend/internal/pkg/rekuest"
	"github.com/prypal/backend/internal/server/svr"
	"github.com/prypal/backend/internal/service"
)

type Pallet struct {
	PalletService   *service.Pallet
	MaterialService *service.Material
}

func RegisterPallet(v1 *svr.V1, palletService *service.Pallet, materialService *service.Material) {
	c := &Pallet{
		PalletService:   palletService,
		MaterialService: materialService,
	}

	v1.Post("/materials/:materialCode/pallets", c.AssemblePallet)

	v1.Get("/pallets", c.GetPallets)
	v1.Get("/pallets/:palletId", c.GetPalletByID)
}

func (c *Pallet) AssemblePallet(ctx *fiber.Ctx) error {
	var request types.AssemblePalletRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	material, err := c.MaterialService.GetMaterialByCode(ctx.UserContext(), ctx.Params("materialCode"))
	if err != nil {
		return err
	}

	pallet, err := c.PalletService.Assemble(ctx.UserContext(), material, request.CompleteType)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(pallet)
}

func (c *Pallet) GetPallets(ctx *fiber.Ctx) error {
	pallets, err := c.PalletService.GetPallets(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(pallets)
}

type palletDetail struct {
	*model.Pallet

	DrumNumbers []string `json:"drumNumbers"`
}

func (c *Pallet) GetPalletByID(ctx *fiber.Ctx) error {
	pallet, drumNumbers, err := c.PalletService.GetPalletDetail(ctx.UserContext(), ctx.Params("palletId"))
	if err != nil {
		return err
	}
	return ctx.JSON(palletDetail{
		Pallet:      pallet,
		DrumNumbers: drumNumbers,
	})
}

package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/server/svr"
	"github.com/prypal/backend/internal/service"
)

type Material struct {
	MaterialService *service.Material
	DrumService     *service.Drum
}

func RegisterMaterial(v1 *svr.V1, materialService *service.Material, drumService *service.Drum) {
	c := &Material{
		MaterialService: materialService,
		DrumService:     drumService,
	}

	v1.Get("/materials", c.GetMaterials)
	v1.Get("/materials/:materialCode", c.GetMaterialByCode)
}

type materialListItem struct {
	*model.Material

	ActiveCount int `json:"activeCount"`
}

// GetMaterials lists active materials together with their live active-drum
// counts, which is what the pallet-selection screen renders.
func (c *Material) GetMaterials(ctx *fiber.Ctx) error {
	materials, err := c.MaterialService.GetActiveMaterials(ctx.UserContext())
	if err != nil {
		return err
	}

	counts, err := c.DrumService.ActiveCounts(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(lo.Map(materials, func(m *model.Material, _ int) *materialListItem {
		return &materialListItem{
			Material:    m,
			ActiveCount: counts[m.MaterialCode],
		}
	}))
}

func (c *Material) GetMaterialByCode(ctx *fiber.Ctx) error {
	material, err := c.MaterialService.GetMaterialByCode(ctx.UserContext(), ctx.Params("materialCode"))
	if err != nil {
		return err
	}
	return ctx.JSON(material)
}

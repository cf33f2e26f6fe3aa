package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/repo/selector"
)

type Material struct {
	db  *bun.DB
	sel selector.S[model.Material]
}

func NewMaterial(db *bun.DB) *Material {
	return &Material{db: db, sel: selector.New[model.Material](db)}
}

func (r *Material) GetMaterials(ctx context.Context) ([]*model.Material, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("material_code ASC")
	})
}

func (r *Material) GetActiveMaterials(ctx context.Context) ([]*model.Material, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("active = TRUE").Order("material_code ASC")
	})
}

func (r *Material) GetMaterialByCode(ctx context.Context, materialCode string) (*model.Material, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("material_code = ?", materialCode)
	})
}

// UpsertMaterial writes the full row keyed by material code. Admin-only; the
// packing state machine never calls this.
func (r *Material) UpsertMaterial(ctx context.Context, material *model.Material) error {
	_, err := r.db.NewInsert().
		Model(material).
		On("CONFLICT (material_code) DO UPDATE").
		Set("description = EXCLUDED.description").
		Set("max_qty = EXCLUDED.max_qty").
		Set("prefix = EXCLUDED.prefix").
		Set("allow_incomplete = EXCLUDED.allow_incomplete").
		Set("active = EXCLUDED.active").
		Exec(ctx)
	return err
}

package service

import (
	"context"
	"time"

	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/model/cache"
	"github.com/prypal/backend/internal/repo"
)

// Material is the read-only packing rule catalog. Writes happen through the
// admin service only.
type Material struct {
	MaterialRepo *repo.Material
}

func NewMaterial(materialRepo *repo.Material) *Material {
	return &Material{
		MaterialRepo: materialRepo,
	}
}

func (s *Material) GetActiveMaterials(ctx context.Context) ([]*model.Material, error) {
	var materials []*model.Material
	err := cache.ActiveMaterials.MutexGetSet(&materials, func() ([]*model.Material, error) {
		return s.MaterialRepo.GetActiveMaterials(ctx)
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return materials, nil
}

func (s *Material) GetMaterialByCode(ctx context.Context, materialCode string) (*model.Material, error) {
	var material model.Material
	err := cache.MaterialByCode.MutexGetSet(materialCode, &material, func() (model.Material, error) {
		m, err := s.MaterialRepo.GetMaterialByCode(ctx, materialCode)
		if err != nil {
			return model.Material{}, err
		}
		return *m, nil
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return &material, nil
}

package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/prypal/backend/internal/constant"
	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/model/cache"
	"github.com/prypal/backend/internal/model/types"
	"github.com/prypal/backend/internal/pkg/pperr"
	"github.com/prypal/backend/internal/repo"
)

// Admin is the administrative surface: counter override and material
// management. These are plain field writes with no transactional coupling to
// the packing state machine.
type Admin struct {
	SettingRepo  *repo.Setting
	MaterialRepo *repo.Material
}

func NewAdmin(settingRepo *repo.Setting, materialRepo *repo.Material) *Admin {
	return &Admin{
		SettingRepo:  settingRepo,
		MaterialRepo: materialRepo,
	}
}

// GetPalletCounter reads the counter value the next allocation would return.
// A missing row reads as 0, matching a fresh backend.
func (s *Admin) GetPalletCounter(ctx context.Context) (int64, error) {
	setting, err := s.SettingRepo.GetSettingByKey(ctx, constant.KeyGlobalPalletCounter)
	if err == pperr.ErrNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}

	value, err := strconv.ParseInt(setting.Value, 10, 64)
	if err != nil {
		return 0, pperr.ErrInternalError.Msg("malformed %s value %q", constant.KeyGlobalPalletCounter, setting.Value)
	}
	return value, nil
}

// SetPalletCounter force-writes the counter. Deliberately exempt from the
// monotonicity invariant: an administrator may rewind it.
func (s *Admin) SetPalletCounter(ctx context.Context, value int64) error {
	if err := s.SettingRepo.SetSetting(ctx, constant.KeyGlobalPalletCounter, strconv.FormatInt(value, 10)); err != nil {
		return err
	}

	log.Warn().
		Str("evt.name", "admin.counter.set").
		Int64("value", value).
		Msg("pallet counter overridden")

	return nil
}

func (s *Admin) UpsertMaterial(ctx context.Context, materialCode string, req *types.UpsertMaterialRequest) (*model.Material, error) {
	material := &model.Material{
		MaterialCode:    materialCode,
		Description:     req.Description,
		MaxQty:          req.MaxQty,
		Prefix:          req.Prefix,
		AllowIncomplete: req.AllowIncomplete,
		Active:          req.Active,
	}
	if err := s.MaterialRepo.UpsertMaterial(ctx, material); err != nil {
		return nil, err
	}

	cache.PurgeMaterial(materialCode)

	log.Info().
		Str("evt.name", "admin.material.upsert").
		Str("materialCode", materialCode).
		Msg("material saved")

	return material, nil
}

// PurgeCaches drops every catalog and count cache entry. Material entries are
// purged per-code on upsert; this is the blunt instrument for manual edits
// made directly in the backend.
func (s *Admin) PurgeCaches(ctx context.Context) error {
	materials, err := s.MaterialRepo.GetMaterials(ctx)
	if err != nil && err != pperr.ErrNotFound {
		return err
	}
	for _, m := range materials {
		cache.PurgeMaterial(m.MaterialCode)
	}
	cache.PurgeMaterial("")
	return nil
}

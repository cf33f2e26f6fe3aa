package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/uptrace/bun"

	"github.com/prypal/backend/internal/constant"
	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/model/cache"
	"github.com/prypal/backend/internal/pkg/pperr"
	"github.com/prypal/backend/internal/repo"
)

// Pallet assembles the active set of a material into a sealed pallet.
type Pallet struct {
	DB          *bun.DB
	DrumRepo    *repo.Drum
	PalletRepo  *repo.Pallet
	SettingRepo *repo.Setting
}

func NewPallet(db *bun.DB, drumRepo *repo.Drum, palletRepo *repo.Pallet, settingRepo *repo.Setting) *Pallet {
	return &Pallet{
		DB:          db,
		DrumRepo:    drumRepo,
		PalletRepo:  palletRepo,
		SettingRepo: settingRepo,
	}
}

// CheckAssemblable re-checks the generation window the UI is expected to have
// gated already. FULL needs the full max_qty on the pallet; INCOMPLETE needs
// the material's permission and a non-empty, non-full set.
func CheckAssemblable(material *model.Material, completeType string, activeCount int) error {
	switch completeType {
	case constant.CompleteTypeFull:
		if material.MaxQty <= 0 || activeCount < material.MaxQty {
			return pperr.ErrGenerationNotAllowed.
				Msg("pallet for %q needs %d drums, has %d", material.MaterialCode, material.MaxQty, activeCount)
		}
	case constant.CompleteTypeIncomplete:
		if !material.AllowIncomplete {
			return pperr.ErrGenerationNotAllowed.
				Msg("material %q does not allow incomplete pallets", material.MaterialCode)
		}
		if activeCount <= 0 || activeCount >= material.MaxQty {
			return pperr.ErrGenerationNotAllowed.
				Msg("incomplete pallet for %q needs between 1 and %d drums, has %d", material.MaterialCode, material.MaxQty-1, activeCount)
		}
	default:
		return pperr.ErrInvalidReq.Msg("unknown complete type %q", completeType)
	}
	return nil
}

// PalletID derives a pallet id from the material prefix and an allocated
// sequence value. Plain concatenation, no padding or separator.
func PalletID(prefix string, seq int64) string {
	return prefix + strconv.FormatInt(seq, 10)
}

// Assemble converts the material's active drums into a sealed pallet: lock
// the active set, re-check the window, allocate the counter, stamp the drums
// and create the pallet row. All of it commits together or not at all.
func (s *Pallet) Assemble(ctx context.Context, material *model.Material, completeType string) (*model.Pallet, error) {
	completeType = strings.ToUpper(completeType)

	var pallet *model.Pallet
	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		drums, err := s.DrumRepo.GetActiveDrumsForUpdate(ctx, tx, material.MaterialCode)
		if err != nil {
			return err
		}

		if err := CheckAssemblable(material, completeType, len(drums)); err != nil {
			return err
		}

		seq, err := s.SettingRepo.NextPalletSeq(ctx, tx)
		if err != nil {
			return err
		}
		palletID := PalletID(material.Prefix, seq)

		sealed, err := s.DrumRepo.SealActiveDrums(ctx, tx, material.MaterialCode, palletID)
		if err != nil {
			return err
		}
		if sealed != len(drums) {
			// the FOR UPDATE snapshot and the seal disagree; abort the tx
			return pperr.ErrInternalError.
				Msg("sealed %d drums but locked %d for pallet %s", sealed, len(drums), palletID)
		}

		pallet = &model.Pallet{
			PalletID:     palletID,
			MaterialCode: material.MaterialCode,
			Description:  material.Description,
			CreatedAt:    time.Now().UTC(),
			Count:        len(drums),
			CompleteType: completeType,
		}
		return s.PalletRepo.CreatePallet(ctx, tx, pallet)
	})
	if err != nil {
		return nil, err
	}

	cache.PurgeMaterial("")

	log.Info().
		Str("evt.name", "pallet.assemble").
		Str("palletId", pallet.PalletID).
		Str("materialCode", pallet.MaterialCode).
		Str("completeType", pallet.CompleteType).
		Int("count", pallet.Count).
		Msg("assembled pallet")

	return pallet, nil
}

// GetPallets returns pallet history, newest first.
func (s *Pallet) GetPallets(ctx context.Context) ([]*model.Pallet, error) {
	return s.PalletRepo.GetPallets(ctx)
}

func (s *Pallet) GetPalletByID(ctx context.Context, palletID string) (*model.Pallet, error) {
	return s.PalletRepo.GetPalletByID(ctx, palletID)
}

// GetPalletDetail returns a pallet together with the numbers of the drums
// sealed to it, in scan order.
func (s *Pallet) GetPalletDetail(ctx context.Context, palletID string) (*model.Pallet, []string, error) {
	pallet, err := s.PalletRepo.GetPalletByID(ctx, palletID)
	if err != nil {
		return nil, nil, err
	}

	drums, err := s.DrumRepo.GetDrumsByPalletID(ctx, palletID)
	if err != nil && err != pperr.ErrNotFound {
		return nil, nil, err
	}

	return pallet, DrumNumbersOf(drums), nil
}

// DrumNumbersOf is a display helper for pallet detail responses.
func DrumNumbersOf(drums []*model.Drum) []string {
	return lo.Map(drums, func(d *model.Drum, _ int) string {
		return d.DrumNumber
	})
}

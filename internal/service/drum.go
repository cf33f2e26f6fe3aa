package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"github.com/prypal/backend/internal/constant"
	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/model/cache"
	"github.com/prypal/backend/internal/model/types"
	"github.com/prypal/backend/internal/pkg/pperr"
	"github.com/prypal/backend/internal/pkg/scan"
	"github.com/prypal/backend/internal/repo"
)

// Drum is the ledger of drum scans: it owns the per-material active set and
// the durable per-drum-number history.
type Drum struct {
	DB         *bun.DB
	DrumRepo   *repo.Drum
	PalletRepo *repo.Pallet
}

func NewDrum(db *bun.DB, drumRepo *repo.Drum, palletRepo *repo.Pallet) *Drum {
	return &Drum{
		DB:         db,
		DrumRepo:   drumRepo,
		PalletRepo: palletRepo,
	}
}

// ListActive returns the pallet in progress for a material, oldest scan first.
func (s *Drum) ListActive(ctx context.Context, materialCode string) ([]*model.Drum, error) {
	return s.DrumRepo.GetActiveDrums(ctx, materialCode)
}

// ActiveCounts returns per-material ACTIVE drum counts for the material list.
func (s *Drum) ActiveCounts(ctx context.Context) (map[string]int, error) {
	var counts map[string]int
	err := cache.ActiveDrumCounts.MutexGetSet(&counts, func() (map[string]int, error) {
		return s.DrumRepo.GetActiveDrumCounts(ctx)
	}, time.Second*5)
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// GetByNumber is the history lookup used by the admin search screen.
func (s *Drum) GetByNumber(ctx context.Context, drumNumber string) (*model.Drum, error) {
	return s.DrumRepo.GetDrumByNumber(ctx, drumNumber)
}

// Append validates a parsed scan against the material being packed and
// records the drum. The duplicate lookup and the insert run inside one
// transaction so two devices racing on the same drum number cannot both
// succeed. Checks run in a fixed order: duplicate, material label, required
// quantity. The max_qty ceiling is deliberately not checked here; assembly is
// the authoritative gate.
func (s *Drum) Append(ctx context.Context, material *model.Material, sc *scan.Scan, req *types.AppendDrumRequest) (*model.Drum, error) {
	drum := &model.Drum{
		DrumNumber:   sc.DrumNumber,
		DrumType:     sc.DrumType,
		MaterialCode: material.MaterialCode,
		StandardQty:  strings.TrimSpace(req.StandardQty),
		Status:       constant.DrumStatusActive,
		PalletID:     "",
		Timestamp:    time.Now().UTC(),
		Operator:     req.Operator,
		DeviceID:     req.DeviceID,
	}

	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		prior, err := s.DrumRepo.FindDrumTx(ctx, tx, sc.DrumNumber)
		if err != nil && err != pperr.ErrNotFound {
			return err
		}
		if prior != nil {
			return s.duplicateError(ctx, tx, prior)
		}

		if err := CheckAppendable(material, req.MaterialCode, drum.StandardQty); err != nil {
			return err
		}

		return s.DrumRepo.CreateDrum(ctx, tx, drum)
	})
	if err != nil {
		return nil, err
	}

	cache.PurgeMaterial("")

	log.Info().
		Str("evt.name", "drum.append").
		Str("drumNumber", drum.DrumNumber).
		Str("materialCode", drum.MaterialCode).
		Str("operator", drum.Operator).
		Msg("recorded drum scan")

	return drum, nil
}

// CheckAppendable runs the label and required-field checks of a scan, after
// the duplicate lookup and in this order: the material code confirmed by the
// operator must match the pallet being packed, and the standard quantity is
// required unless the material's allow-incomplete flag exempts it.
func CheckAppendable(material *model.Material, labelCode, standardQty string) error {
	if labelCode != material.MaterialCode {
		return pperr.ErrMaterialMismatch.
			Msg("wrong material label: cannot register this drum on a pallet packing %q", material.MaterialCode)
	}

	if !material.AllowIncomplete && standardQty == "" {
		return pperr.ErrMissingQuantity
	}

	return nil
}

// duplicateError phrases the DUPLICATE_DRUM failure. A sealed prior record
// surfaces its pallet id and creation time; a still-active one carries no
// pallet reference.
func (s *Drum) duplicateError(ctx context.Context, tx bun.Tx, prior *model.Drum) error {
	if prior.PalletID == "" {
		return pperr.Duplicate("", "")
	}

	createdAt := "N/A"
	pallet, err := s.PalletRepo.FindPalletTx(ctx, tx, prior.PalletID)
	if err == nil {
		createdAt = pallet.CreatedAt.UTC().Format("2006-01-02 15:04:05")
	} else if err != pperr.ErrNotFound {
		return err
	}
	return pperr.Duplicate(prior.PalletID, createdAt)
}

// UndoLast deletes the most recently scanned ACTIVE drum for the material and
// frees its number for rescanning.
func (s *Drum) UndoLast(ctx context.Context, materialCode string) (*model.Drum, error) {
	drum, err := s.DrumRepo.DeleteLastActive(ctx, materialCode)
	if err != nil {
		return nil, err
	}

	cache.PurgeMaterial("")

	log.Info().
		Str("evt.name", "drum.undo").
		Str("drumNumber", drum.DrumNumber).
		Str("materialCode", materialCode).
		Msg("removed last drum scan")

	return drum, nil
}

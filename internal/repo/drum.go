package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/prypal/backend/internal/constant"
	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/pkg/pperr"
	"github.com/prypal/backend/internal/repo/selector"
)

type Drum struct {
	db  *bun.DB
	sel selector.S[model.Drum]
}

func NewDrum(db *bun.DB) *Drum {
	return &Drum{db: db, sel: selector.New[model.Drum](db)}
}

// GetDrumByNumber is the durable history lookup: one authoritative row per
// drum number, regardless of status.
func (r *Drum) GetDrumByNumber(ctx context.Context, drumNumber string) (*model.Drum, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("drum_number = ?", drumNumber)
	})
}

// GetActiveDrums returns the pallet in progress for a material, in scan order.
func (r *Drum) GetActiveDrums(ctx context.Context, materialCode string) ([]*model.Drum, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("material_code = ?", materialCode).
			Where("status = ?", constant.DrumStatusActive).
			Order("timestamp ASC")
	})
}

type activeCountRow struct {
	MaterialCode string `bun:"material_code"`
	Count        int    `bun:"count"`
}

func (r *Drum) GetActiveDrumCounts(ctx context.Context) (map[string]int, error) {
	var rows []activeCountRow
	err := r.db.NewSelect().
		Model((*model.Drum)(nil)).
		Column("material_code").
		ColumnExpr("COUNT(*) AS count").
		Where("status = ?", constant.DrumStatusActive).
		Group("material_code").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.MaterialCode] = row.Count
	}
	return counts, nil
}

// GetDrumsByPalletID returns the drums sealed to a pallet, in scan order.
func (r *Drum) GetDrumsByPalletID(ctx context.Context, palletID string) ([]*model.Drum, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("pallet_id = ?", palletID).
			Order("timestamp ASC")
	})
}

// FindDrumTx looks a drum number up inside the caller's transaction so the
// duplicate check and the subsequent insert observe the same snapshot.
func (r *Drum) FindDrumTx(ctx context.Context, tx bun.Tx, drumNumber string) (*model.Drum, error) {
	drum := new(model.Drum)
	err := tx.NewSelect().
		Model(drum).
		Where("drum_number = ?", drumNumber).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pperr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return drum, nil
}

// uniqueViolation is the SQLSTATE pgdriver reports when an insert loses a
// primary key race.
const uniqueViolation = "23505"

func (r *Drum) CreateDrum(ctx context.Context, tx bun.Tx, drum *model.Drum) error {
	_, err := tx.NewInsert().
		Model(drum).
		Exec(ctx)
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation {
		// a concurrent append got past the duplicate lookup first; phrase
		// the loser like a sequential duplicate
		return pperr.Duplicate("", "")
	}
	return err
}

// GetActiveDrumsForUpdate locks the active set of a material for the duration
// of the assembly transaction.
func (r *Drum) GetActiveDrumsForUpdate(ctx context.Context, tx bun.Tx, materialCode string) ([]*model.Drum, error) {
	var drums []*model.Drum
	err := tx.NewSelect().
		Model(&drums).
		Where("material_code = ?", materialCode).
		Where("status = ?", constant.DrumStatusActive).
		Order("timestamp ASC").
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return drums, nil
}

// SealActiveDrums marks every ACTIVE drum of the material COMPLETED and
// stamps the pallet id, as one statement. Returns the number of drums sealed.
func (r *Drum) SealActiveDrums(ctx context.Context, tx bun.Tx, materialCode, palletID string) (int, error) {
	res, err := tx.NewUpdate().
		Model((*model.Drum)(nil)).
		Set("status = ?", constant.DrumStatusCompleted).
		Set("pallet_id = ?", palletID).
		Where("material_code = ?", materialCode).
		Where("status = ?", constant.DrumStatusActive).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	sealed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(sealed), nil
}

// DeleteLastActive removes the single most recent ACTIVE drum of the material
// and returns it. The ordered subquery and the delete run as one statement,
// so two racing undo calls cannot remove two different drums.
func (r *Drum) DeleteLastActive(ctx context.Context, materialCode string) (*model.Drum, error) {
	last := r.db.NewSelect().
		Model((*model.Drum)(nil)).
		Column("drum_number").
		Where("material_code = ?", materialCode).
		Where("status = ?", constant.DrumStatusActive).
		OrderExpr("timestamp DESC").
		Limit(1)

	drum := new(model.Drum)
	_, err := r.db.NewDelete().
		Model(drum).
		Where("drum_number = (?)", last).
		Returning("*").
		Exec(ctx, drum)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pperr.ErrNoActiveDrums
	} else if err != nil {
		return nil, err
	}
	return drum, nil
}

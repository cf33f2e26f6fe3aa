package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/pkg/pperr"
	"github.com/prypal/backend/internal/repo/selector"
)

type Pallet struct {
	db  *bun.DB
	sel selector.S[model.Pallet]
}

func NewPallet(db *bun.DB) *Pallet {
	return &Pallet{db: db, sel: selector.New[model.Pallet](db)}
}

func (r *Pallet) GetPallets(ctx context.Context) ([]*model.Pallet, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("created_at DESC")
	})
}

func (r *Pallet) GetPalletByID(ctx context.Context, palletID string) (*model.Pallet, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("pallet_id = ?", palletID)
	})
}

// FindPalletTx resolves a pallet inside the caller's transaction. Used to
// enrich duplicate-drum failures with the prior pallet's creation time.
func (r *Pallet) FindPalletTx(ctx context.Context, tx bun.Tx, palletID string) (*model.Pallet, error) {
	pallet := new(model.Pallet)
	err := tx.NewSelect().
		Model(pallet).
		Where("pallet_id = ?", palletID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pperr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return pallet, nil
}

func (r *Pallet) CreatePallet(ctx context.Context, tx bun.Tx, pallet *model.Pallet) error {
	_, err := tx.NewInsert().
		Model(pallet).
		Exec(ctx)
	return err
}

package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/prypal/backend/internal/constant"
	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/repo/selector"
)

type Setting struct {
	db  *bun.DB
	sel selector.S[model.Setting]
}

func NewSetting(db *bun.DB) *Setting {
	return &Setting{db: db, sel: selector.New[model.Setting](db)}
}

func (r *Setting) GetSettingByKey(ctx context.Context, key string) (*model.Setting, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("key = ?", key)
	})
}

// SetSetting merge-upserts one key. This is the administrative override path
// and carries no allocation semantics.
func (r *Setting) SetSetting(ctx context.Context, key, value string) error {
	setting := &model.Setting{Key: key, Value: value}
	_, err := r.db.NewInsert().
		Model(setting).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	return err
}

// NextPalletSeq increments global_pallet_counter and returns its
// pre-increment value, as a single statement inside the caller's transaction.
// The row lock taken by the UPDATE is what serializes concurrent assemblies:
// two callers can never observe the same value. A missing counter row is
// seeded so the first allocation yields 0, matching a fresh backend.
func (r *Setting) NextPalletSeq(ctx context.Context, tx bun.Tx) (int64, error) {
	var seq int64
	err := tx.NewRaw(
		"UPDATE settings SET value = (value::bigint + 1)::text WHERE key = ? RETURNING (value::bigint - 1)",
		constant.KeyGlobalPalletCounter,
	).Scan(ctx, &seq)
	if err == nil {
		return seq, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	seed := &model.Setting{Key: constant.KeyGlobalPalletCounter, Value: "1"}
	if _, err := tx.NewInsert().Model(seed).Exec(ctx); err != nil {
		return 0, err
	}
	return 0, nil
}

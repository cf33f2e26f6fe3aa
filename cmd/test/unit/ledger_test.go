package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/prypal/backend/internal/constant"
	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/model/types"
	"github.com/prypal/backend/internal/pkg/pperr"
	"github.com/prypal/backend/internal/pkg/scan"
	"github.com/prypal/backend/internal/pkg/testentry"
	"github.com/prypal/backend/internal/service"
)

// TestLedgerAndAssembly walks the packing state machine against a real
// backend: append, duplicate rejection, undo, the assembly windows and the
// counter. Subtests run in order and share the material below; each one that
// needs a clean slate resets the material's rows first.
func TestLedgerAndAssembly(t *testing.T) {
	if os.Getenv("PRYPAL_TEST_PG_DSN") == "" {
		t.Skip("PRYPAL_TEST_PG_DSN not set; skipping infra-backed suite")
	}
	os.Setenv("PRYPAL_POSTGRES_DSN", os.Getenv("PRYPAL_TEST_PG_DSN"))

	var (
		db            *bun.DB
		drumService   *service.Drum
		palletService *service.Pallet
		adminService  *service.Admin
	)
	testentry.Populate(t, &db, &drumService, &palletService, &adminService)

	material := &model.Material{
		MaterialCode:    "60115949",
		Description:     "DWP 1500 LV",
		MaxQty:          20,
		Prefix:          "SL-5959",
		AllowIncomplete: true,
		Active:          true,
	}

	ctx := context.Background()

	reset := func(t *testing.T) {
		t.Helper()
		_, err := db.NewDelete().
			Model((*model.Drum)(nil)).
			Where("material_code = ?", material.MaterialCode).
			Exec(ctx)
		require.NoError(t, err)
		_, err = db.NewDelete().
			Model((*model.Pallet)(nil)).
			Where("material_code = ?", material.MaterialCode).
			Exec(ctx)
		require.NoError(t, err)
	}

	appendScan := func(t *testing.T, raw string) (*model.Drum, error) {
		t.Helper()
		sc, err := scan.Parse(raw)
		require.NoError(t, err)
		return drumService.Append(ctx, material, sc, &types.AppendDrumRequest{
			Scan:         raw,
			MaterialCode: material.MaterialCode,
			StandardQty:  "200",
			Operator:     "tester",
			DeviceID:     "test-device",
		})
	}

	asAppError := func(t *testing.T, err error, code string) *pperr.PryPalError {
		t.Helper()
		var e *pperr.PryPalError
		require.ErrorAs(t, err, &e)
		assert.Equal(t, code, e.ErrorCode)
		return e
	}

	activeNumbers := func(t *testing.T) []string {
		t.Helper()
		drums, err := drumService.ListActive(ctx, material.MaterialCode)
		require.NoError(t, err)
		return service.DrumNumbersOf(drums)
	}

	t.Run("AppendRecordsActiveDrum", func(t *testing.T) {
		reset(t)

		drum, err := appendScan(t, "DWP1500_LV 15518289")
		require.NoError(t, err)
		assert.Equal(t, "15518289", drum.DrumNumber)
		assert.Equal(t, "DWP1500_LV", drum.DrumType)
		assert.Equal(t, constant.DrumStatusActive, drum.Status)
		assert.Empty(t, drum.PalletID)

		assert.Equal(t, []string{"15518289"}, activeNumbers(t))
	})

	t.Run("DuplicateWhileActive", func(t *testing.T) {
		_, err := appendScan(t, "DWP1500_LV 15518289")
		e := asAppError(t, err, pperr.CodeDuplicateDrum)
		assert.Nil(t, e.Extras, "an active prior carries no pallet reference")

		assert.Equal(t, []string{"15518289"}, activeNumbers(t), "the rejected scan must not write")
	})

	t.Run("ConcurrentAppendsYieldOneRow", func(t *testing.T) {
		reset(t)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = appendScan(t, "DWP1500_LV 15518290")
			}(i)
		}
		wg.Wait()

		if errs[0] == nil {
			asAppError(t, errs[1], pperr.CodeDuplicateDrum)
		} else {
			require.NoError(t, errs[1])
			asAppError(t, errs[0], pperr.CodeDuplicateDrum)
		}
		assert.Equal(t, []string{"15518290"}, activeNumbers(t))
	})

	t.Run("UndoRemovesLatestAndFreesNumber", func(t *testing.T) {
		reset(t)
		_, err := appendScan(t, "DWP1500_LV 15518289")
		require.NoError(t, err)
		_, err = appendScan(t, "DWP1500_LV 15518290")
		require.NoError(t, err)

		undone, err := drumService.UndoLast(ctx, material.MaterialCode)
		require.NoError(t, err)
		assert.Equal(t, "15518290", undone.DrumNumber, "undo removes the newest scan only")
		assert.Equal(t, []string{"15518289"}, activeNumbers(t))

		// the number is free for rescanning
		_, err = appendScan(t, "DWP1500_LV 15518290")
		require.NoError(t, err)
	})

	t.Run("UndoOnEmptySet", func(t *testing.T) {
		reset(t)

		_, err := drumService.UndoLast(ctx, material.MaterialCode)
		asAppError(t, err, pperr.CodeNoActiveDrums)
	})

	var sealedPalletID string

	t.Run("AssembleIncomplete", func(t *testing.T) {
		reset(t)
		for i := 1; i <= 5; i++ {
			_, err := appendScan(t, fmt.Sprintf("DWP1500_LV 155183%02d", i))
			require.NoError(t, err)
		}

		counterBefore, err := adminService.GetPalletCounter(ctx)
		require.NoError(t, err)

		pallet, err := palletService.Assemble(ctx, material, "incomplete")
		require.NoError(t, err)
		assert.Equal(t, service.PalletID(material.Prefix, counterBefore), pallet.PalletID)
		assert.Equal(t, 5, pallet.Count)
		assert.Equal(t, constant.CompleteTypeIncomplete, pallet.CompleteType)
		assert.Equal(t, material.Description, pallet.Description)

		assert.Empty(t, activeNumbers(t), "assembly empties the active set")

		for i := 1; i <= 5; i++ {
			drum, err := drumService.GetByNumber(ctx, fmt.Sprintf("155183%02d", i))
			require.NoError(t, err)
			assert.Equal(t, constant.DrumStatusCompleted, drum.Status)
			assert.Equal(t, pallet.PalletID, drum.PalletID)
		}

		counterAfter, err := adminService.GetPalletCounter(ctx)
		require.NoError(t, err)
		assert.Equal(t, counterBefore+1, counterAfter, "one assembly advances the counter by one")

		sealedPalletID = pallet.PalletID
	})

	t.Run("DuplicateSealedCarriesPriorPallet", func(t *testing.T) {
		require.NotEmpty(t, sealedPalletID)

		_, err := appendScan(t, "DWP1500_LV 15518301")
		e := asAppError(t, err, pperr.CodeDuplicateDrum)
		require.NotNil(t, e.Extras)
		assert.Equal(t, sealedPalletID, (*e.Extras)["priorPalletId"])
		assert.NotEmpty(t, (*e.Extras)["priorCreatedAt"])
	})

	t.Run("AssembleIncompleteEmptyRejected", func(t *testing.T) {
		reset(t)

		_, err := palletService.Assemble(ctx, material, "INCOMPLETE")
		asAppError(t, err, pperr.CodeGenerationNotAllowed)
	})

	t.Run("AssembleFullShortRejected", func(t *testing.T) {
		reset(t)
		for i := 1; i <= 3; i++ {
			_, err := appendScan(t, fmt.Sprintf("DWP1500_LV 155184%02d", i))
			require.NoError(t, err)
		}

		_, err := palletService.Assemble(ctx, material, "FULL")
		asAppError(t, err, pperr.CodeGenerationNotAllowed)
		assert.Len(t, activeNumbers(t), 3, "a rejected assembly must leave the set untouched")
	})

	t.Run("AssembleFull", func(t *testing.T) {
		reset(t)
		for i := 1; i <= material.MaxQty; i++ {
			_, err := appendScan(t, fmt.Sprintf("DWP1500_LV 155185%02d", i))
			require.NoError(t, err)
		}

		pallet, err := palletService.Assemble(ctx, material, "FULL")
		require.NoError(t, err)
		assert.Equal(t, material.MaxQty, pallet.Count)
		assert.Equal(t, constant.CompleteTypeFull, pallet.CompleteType)
		assert.Empty(t, activeNumbers(t))
	})

	t.Run("CounterSeedsFreshBackend", func(t *testing.T) {
		reset(t)
		_, err := db.NewDelete().
			Model((*model.Setting)(nil)).
			Where("key = ?", constant.KeyGlobalPalletCounter).
			Exec(ctx)
		require.NoError(t, err)

		_, err = appendScan(t, "DWP1500_LV 15518601")
		require.NoError(t, err)

		pallet, err := palletService.Assemble(ctx, material, "INCOMPLETE")
		require.NoError(t, err)
		assert.Equal(t, material.Prefix+"0", pallet.PalletID, "a fresh backend allocates sequence 0")

		counter, err := adminService.GetPalletCounter(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counter)
	})
}

package pperr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	assert.NotEqual(t, "changed", e.Message, "expected original error to be untouched")
	assert.Equal(t, "changed", changedE.Message)
}

func TestDuplicate(t *testing.T) {
	t.Run("StillActive", func(t *testing.T) {
		e := Duplicate("", "")
		assert.Same(t, ErrDuplicateDrum, e)
		assert.Nil(t, e.Extras)
	})

	t.Run("SealedOnPriorPallet", func(t *testing.T) {
		e := Duplicate("SL-595912", "2026-08-30 07:14:02")
		assert.Equal(t, CodeDuplicateDrum, e.ErrorCode)
		assert.Contains(t, e.Message, "SL-595912")
		assert.Contains(t, e.Message, "2026-08-30 07:14:02")
		if assert.NotNil(t, e.Extras) {
			assert.Equal(t, "SL-595912", (*e.Extras)["priorPalletId"])
		}
		// the shared value must stay pristine
		assert.Nil(t, ErrDuplicateDrum.Extras)
	})
}

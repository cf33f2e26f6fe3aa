package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prypal/backend/internal/constant"
	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/pkg/pperr"
)

func TestCheckAssemblable(t *testing.T) {
	material := &model.Material{
		MaterialCode:    "60115949",
		MaxQty:          20,
		Prefix:          "SL-5959",
		AllowIncomplete: true,
	}
	strict := &model.Material{
		MaterialCode: "60220000",
		MaxQty:       12,
	}
	unusable := &model.Material{
		MaterialCode: "60330000",
		MaxQty:       0,
	}

	tests := []struct {
		name         string
		material     *model.Material
		completeType string
		count        int
		code         string
	}{
		{"FullAtThreshold", material, constant.CompleteTypeFull, 20, ""},
		{"FullBeyondThreshold", material, constant.CompleteTypeFull, 23, ""},
		{"FullOneShort", material, constant.CompleteTypeFull, 19, pperr.CodeGenerationNotAllowed},
		{"FullEmpty", material, constant.CompleteTypeFull, 0, pperr.CodeGenerationNotAllowed},
		{"FullZeroMaxQty", unusable, constant.CompleteTypeFull, 5, pperr.CodeGenerationNotAllowed},
		{"IncompleteInWindow", material, constant.CompleteTypeIncomplete, 5, ""},
		{"IncompleteLowerEdge", material, constant.CompleteTypeIncomplete, 1, ""},
		{"IncompleteUpperEdge", material, constant.CompleteTypeIncomplete, 19, ""},
		{"IncompleteEmpty", material, constant.CompleteTypeIncomplete, 0, pperr.CodeGenerationNotAllowed},
		{"IncompleteAtFull", material, constant.CompleteTypeIncomplete, 20, pperr.CodeGenerationNotAllowed},
		{"IncompleteNotAllowed", strict, constant.CompleteTypeIncomplete, 5, pperr.CodeGenerationNotAllowed},
		{"UnknownCompleteType", material, "PARTIAL", 5, pperr.CodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAssemblable(tt.material, tt.completeType, tt.count)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			var e *pperr.PryPalError
			if assert.ErrorAs(t, err, &e) {
				assert.Equal(t, tt.code, e.ErrorCode)
			}
		})
	}
}

func TestPalletID(t *testing.T) {
	assert.Equal(t, "SL-59590", PalletID("SL-5959", 0))
	assert.Equal(t, "SL-5959137", PalletID("SL-5959", 137))
	assert.Equal(t, "42", PalletID("", 42), "empty prefix yields the bare counter value")
}

func TestDrumNumbersOf(t *testing.T) {
	drums := []*model.Drum{
		{DrumNumber: "15518289"},
		{DrumNumber: "15518290"},
	}
	assert.Equal(t, []string{"15518289", "15518290"}, DrumNumbersOf(drums))
	assert.Empty(t, DrumNumbersOf(nil))
}

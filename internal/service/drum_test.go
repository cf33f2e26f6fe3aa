package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/pkg/pperr"
)

func TestCheckAppendable(t *testing.T) {
	lenient := &model.Material{
		MaterialCode:    "60115949",
		MaxQty:          20,
		AllowIncomplete: true,
	}
	strict := &model.Material{
		MaterialCode: "60220000",
		MaxQty:       12,
	}

	tests := []struct {
		name        string
		material    *model.Material
		labelCode   string
		standardQty string
		code        string
	}{
		{"Match", lenient, "60115949", "20", ""},
		{"MatchEmptyQtyExempt", lenient, "60115949", "", ""},
		{"WrongLabel", lenient, "60220000", "20", pperr.CodeMaterialMismatch},
		{"MissingQty", strict, "60220000", "", pperr.CodeMissingQuantity},
		{"StrictWithQty", strict, "60220000", "16", ""},
		// label check comes first: a wrong label with a missing quantity
		// reports the mismatch, not the quantity
		{"WrongLabelAndMissingQty", strict, "60115949", "", pperr.CodeMaterialMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAppendable(tt.material, tt.labelCode, tt.standardQty)
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

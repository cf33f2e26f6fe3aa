package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prypal/backend/internal/pkg/pperr"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		drumType   string
		drumNumber string
		err        error
	}{
		{"Typical", "DWP1500_LV 15518289", "DWP1500_LV", "15518289", nil},
		{"SurroundingWhitespace", "  DWP1500_LV 15518289\n", "DWP1500_LV", "15518289", nil},
		{"MultiTokenType", "DWP 1500 LV 15518289", "DWP 1500 LV", "15518289", nil},
		{"TabSeparated", "DWP1500_LV\t15518289", "DWP1500_LV", "15518289", nil},
		{"SingleToken", "15518289", "", "", pperr.ErrInvalidScanFormat},
		{"Empty", "", "", "", pperr.ErrInvalidScanFormat},
		{"OnlyWhitespace", "   \t ", "", "", pperr.ErrInvalidScanFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.raw)
			if tt.err != nil {
				assert.Nil(t, s)
				assert.Equal(t, tt.err, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.drumType, s.DrumType)
			assert.Equal(t, tt.drumNumber, s.DrumNumber)
		})
	}
}

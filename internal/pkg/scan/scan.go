// Package scan parses the raw keystroke payload emitted by the handheld
// scanners, e.g. "DWP1500_LV 15518289". The final whitespace-delimited token
// is the drum number; everything before it is the drum type.
package scan

import (
	"strings"

	"github.com/prypal/backend/internal/pkg/pperr"
)

type Scan struct {
	DrumType   string `json:"drumType"`
	DrumNumber string `json:"drumNumber"`
}

func Parse(raw string) (*Scan, error) {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return nil, pperr.ErrInvalidScanFormat
	}

	return &Scan{
		DrumType:   strings.Join(fields[:len(fields)-1], " "),
		DrumNumber: fields[len(fields)-1],
	}, nil
}

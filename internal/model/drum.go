package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Drum is one physical drum scan. At most one row exists per drum number at
// any time; status moves ACTIVE -> COMPLETED exactly once, when the enclosing
// pallet is assembled. PalletID stays empty while ACTIVE.
type Drum struct {
	bun.BaseModel `bun:"drums,alias:d"`

	DrumNumber   string    `bun:",pk" json:"drumNumber"`
	DrumType     string    `json:"drumType"`
	MaterialCode string    `json:"materialCode"`
	StandardQty  string    `json:"standardQty"`
	Status       string    `json:"status"`
	PalletID     string    `json:"palletId"`
	Timestamp    time.Time `json:"timestamp"`
	Operator     string    `json:"operator"`
	DeviceID     string    `json:"deviceId"`
}

package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Pallet is a sealed group of drums. Created once, atomically, never mutated.
type Pallet struct {
	bun.BaseModel `bun:"pallets,alias:p"`

	PalletID     string    `bun:",pk" json:"palletId"`
	MaterialCode string    `json:"materialCode"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	Count        int       `json:"count"`
	CompleteType string    `json:"completeType"`
}

package model

import (
	"github.com/uptrace/bun"
)

// Setting is one key/value row of the settings collection. The
// global_pallet_counter row backs the pallet sequence allocator.
type Setting struct {
	bun.BaseModel `bun:"settings,alias:s"`

	Key   string `bun:",pk" json:"key"`
	Value string `json:"value"`
}

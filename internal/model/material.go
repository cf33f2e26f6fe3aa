package model

import (
	"github.com/uptrace/bun"
)

// Material is a packing rule row. Immutable during a packing session; mutated
// only through the admin surface.
type Material struct {
	bun.BaseModel `bun:"materials,alias:m"`

	MaterialCode    string `bun:",pk" json:"materialCode"`
	Description     string `json:"description"`
	MaxQty          int    `json:"maxQty"`
	Prefix          string `json:"prefix"`
	AllowIncomplete bool   `json:"allowIncomplete"`
	Active          bool   `json:"active"`
}

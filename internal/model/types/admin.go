package types

// UpdateCounterRequest force-sets the global pallet counter. This bypasses
// allocation semantics: an administrator may deliberately rewind it.
type UpdateCounterRequest struct {
	Value int64 `json:"value" validate:"min=0"`
}

// UpsertMaterialRequest creates or updates a Material row.
type UpsertMaterialRequest struct {
	Description     string `json:"description"`
	MaxQty          int    `json:"maxQty" validate:"required,min=1"`
	Prefix          string `json:"prefix"`
	AllowIncomplete bool   `json:"allowIncomplete"`
	Active          bool   `json:"active"`
}

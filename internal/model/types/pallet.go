package types

// AssemblePalletRequest selects how the active set is sealed.
type AssemblePalletRequest struct {
	CompleteType string `json:"completeType" validate:"required,caseinsensitiveoneof=FULL INCOMPLETE"`
}

package types

// AppendDrumRequest is the scan submission payload. Scan carries the raw
// scanner keystrokes; MaterialCode is the code typed or confirmed by the
// operator from the physical label, matched against the pallet being packed.
type AppendDrumRequest struct {
	Scan         string `json:"scan" validate:"required"`
	MaterialCode string `json:"materialCode" validate:"required"`
	StandardQty  string `json:"standardQty"`
	Operator     string `json:"operator"`
	DeviceID     string `json:"deviceId"`
}

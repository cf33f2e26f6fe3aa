package constant

const (
	// drum lifecycle
	DrumStatusActive    = "ACTIVE"
	DrumStatusCompleted = "COMPLETED"

	// pallet completion types
	CompleteTypeFull       = "FULL"
	CompleteTypeIncomplete = "INCOMPLETE"

	// settings keys
	KeyGlobalPalletCounter = "global_pallet_counter"

	// http
	RequestIDHeader     = "X-PryPal-Request-ID"
	DeviceIDHeader      = "X-PryPal-Device-ID"
	ContextKeyRequestID = "requestid"

	ServiceName = "prypal-backend"
)

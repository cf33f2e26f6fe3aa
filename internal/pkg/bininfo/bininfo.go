package bininfo

// populated via -ldflags at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

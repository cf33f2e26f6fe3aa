package appconfig

import (
	"time"

	"github.com/prypal/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address the HTTP server would listen on.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9310"`

	// DevMode to indicate development mode. When true, the log level is lowered
	// and fiber exposes pprof endpoints.
	DevMode bool `split_words:"true"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to
	// stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// PostgresDSN is the data source name for the PostgreSQL database holding the
	// materials, settings, drums and pallets collections. See
	// https://bun.uptrace.dev/postgres/#pgdriver for DSN construction.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// RedisURL is the URL of the Redis server used for the material catalog and
	// active-count caches. See https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL
	// for more information on how to construct a Redis URL.
	RedisURL string `required:"true" split_words:"true" default:"redis://127.0.0.1:6379/2"`

	// SentryDSN is the DSN of the Sentry project. Leaving this empty disables
	// Sentry reporting.
	SentryDSN string `split_words:"true"`

	// TrustedProxies is a list of proxies trusted to report a real IP via the
	// X-Forwarded-For header.
	TrustedProxies []string `split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `split_words:"true" default:"60s"`

	// DeviceID is the fallback device identifier recorded on drum scans when the
	// scanning device does not announce one itself.
	DeviceID string `split_words:"true"`
}

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}

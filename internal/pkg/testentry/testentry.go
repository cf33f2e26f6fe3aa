package testentry

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/prypal/backend/internal/app"
	"github.com/prypal/backend/internal/app/appcontext"
)

// Populate builds the full application graph and extracts the requested
// components into the given pointers. Intended for suites that talk to real
// infrastructure.
func Populate(t zerolog.TestingLog, targets ...any) {
	// for testing, logger is too annoying. therefore, we use a NopLogger here
	opts := []fx.Option{
		fx.NopLogger,
		fx.Populate(targets...),
		fx.Invoke(func() {
			log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
		}),
	}

	fxApp := fx.New(app.Options(appcontext.Declare(appcontext.EnvCLI), opts...)...)

	if err := fxApp.Start(context.Background()); err != nil {
		panic(err)
	}
}

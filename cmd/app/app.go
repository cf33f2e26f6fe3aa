package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/prypal/backend/cmd/app/server"
	"github.com/prypal/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "prypald",
		Description: "The PryPal pallet-assembly backend. Tracks drum scans and seals pallets against a shared Postgres backend. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}

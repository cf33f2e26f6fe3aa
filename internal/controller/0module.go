package controller

import (
	"go.uber.org/fx"

	controllerv1 "github.com/prypal/backend/internal/controller/v1"
)

func Module() fx.Option {
	return fx.Module("controller",
		controllerv1.Module(),
		fx.Invoke(
			RegisterMeta,
			RegisterAdmin,
		),
	)
}

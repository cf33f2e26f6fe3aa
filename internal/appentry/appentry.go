package appentry

import (
	"go.uber.org/fx"

	"github.com/prypal/backend/internal/controller"
	"github.com/prypal/backend/internal/infra"
	"github.com/prypal/backend/internal/model/cache"
	"github.com/prypal/backend/internal/repo"
	"github.com/prypal/backend/internal/server"
	"github.com/prypal/backend/internal/service"
)

// ProvideOptions is the module graph shared by the server entrypoint and the
// fx-populated test suites.
func ProvideOptions() []fx.Option {
	return []fx.Option{
		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Global Singleton Inits: Keep those before controllers to ensure they are
		// initialized before controllers are registered, as controllers are also
		// fx#Invoke functions which are called in the order of their registration.
		fx.Invoke(infra.SentryInit),
		fx.Invoke(cache.Initialize),

		// Controllers
		controller.Module(),
	}
}

package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SandeshLive/Sandesh/internal/pkg/storage"
)

// Router installs a set of routes on the app.
type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter wires every route group. The HTTP router goes first so the
// preview and static surfaces are registered before the catch-all JSON 404
// of the API group.
func InstallRouter(app *fiber.App, store *storage.LocalStore) {
	setup(app, NewHttpRouter(store), NewApiRouter(store))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}

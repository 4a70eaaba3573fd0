package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SandeshLive/Sandesh/app/controllers"
	"github.com/SandeshLive/Sandesh/app/repository"
	"github.com/SandeshLive/Sandesh/internal/pkg/constants"
	"github.com/SandeshLive/Sandesh/internal/pkg/preview"
	"github.com/SandeshLive/Sandesh/internal/pkg/storage"
)

type HttpRouter struct {
	store *storage.LocalStore
}

func NewHttpRouter(store *storage.LocalStore) *HttpRouter {
	return &HttpRouter{store: store}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	repos := repository.GetGlobalRepositories()

	// Uploaded media must be fetchable by external link-preview crawlers, so
	// the static mount answers with permissive cross-origin headers.
	app.Use(constants.UploadsRoute, func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set("Cross-Origin-Resource-Policy", "cross-origin")
		return c.Next()
	})
	app.Static(constants.UploadsRoute, h.store.Root(), fiber.Static{
		Compress: false,
		MaxAge:   604800, // 7 days
	})

	previewController := controllers.NewPreviewController(repos.News, preview.SiteFromEnv())
	app.Get(constants.NewsPreview, publicLimiter(), previewController.HandleArticlePreview)
}

package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SandeshLive/Sandesh/app/controllers"
	"github.com/SandeshLive/Sandesh/app/repository"
	"github.com/SandeshLive/Sandesh/internal/pkg/constants"
	"github.com/SandeshLive/Sandesh/internal/pkg/middleware"
	"github.com/SandeshLive/Sandesh/internal/pkg/storage"
)

type ApiRouter struct {
	store *storage.LocalStore
}

func NewApiRouter(store *storage.LocalStore) *ApiRouter {
	return &ApiRouter{store: store}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	repos := repository.GetGlobalRepositories()

	authController := controllers.NewAuthController(repos.Admin)
	newsController := controllers.NewNewsController(repos.News, repos.Category, h.store)
	categoryController := controllers.NewCategoryController(repos.Category)
	marqueeController := controllers.NewMarqueeController(repos.Marquee)

	requireAdmin := middleware.RequireAdminToken(repos.Admin)
	optionalAdmin := middleware.OptionalAdminToken(repos.Admin)

	api := app.Group(constants.APIRoute)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Sandesh API चल रहा है",
		})
	})

	// auth
	auth := api.Group("/auth", authLimiter())
	auth.Post("/login", authController.HandleLogin)
	auth.Get("/me", requireAdmin, authController.HandleProfile)

	// news: reads are public with an optional token lifting the published
	// filter; writes are token-gated and rate-limited harder because they
	// carry file uploads.
	news := api.Group("/news")
	news.Get("/", publicLimiter(), optionalAdmin, newsController.HandleList)
	news.Get("/slug/:slug", publicLimiter(), optionalAdmin, newsController.HandleGetBySlug)
	news.Get("/:id", publicLimiter(), optionalAdmin, newsController.HandleGetByID)
	news.Post("/upload-image", heavyLimiter(), requireAdmin, newsController.HandleUploadImage)
	news.Post("/", heavyLimiter(), requireAdmin, newsController.HandleCreate)
	news.Put("/:id", heavyLimiter(), requireAdmin, newsController.HandleUpdate)
	news.Delete("/:id", adminLimiter(), requireAdmin, newsController.HandleDelete)

	// categories
	categories := api.Group("/categories")
	categories.Get("/", publicLimiter(), categoryController.HandleList)
	categories.Post("/", adminLimiter(), requireAdmin, categoryController.HandleCreate)
	categories.Put("/:id", adminLimiter(), requireAdmin, categoryController.HandleUpdate)
	categories.Delete("/:id", adminLimiter(), requireAdmin, categoryController.HandleDelete)

	// marquee
	marquee := api.Group("/marquee")
	marquee.Get("/", publicLimiter(), marqueeController.HandleListActive)
	marquee.Get("/all", adminLimiter(), requireAdmin, marqueeController.HandleListAll)
	marquee.Post("/", adminLimiter(), requireAdmin, marqueeController.HandleCreate)
	marquee.Put("/:id", adminLimiter(), requireAdmin, marqueeController.HandleUpdate)
	marquee.Delete("/:id", adminLimiter(), requireAdmin, marqueeController.HandleDelete)

	// JSON 404 for everything else under /api
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "मार्ग नहीं मिला",
		})
	})
}

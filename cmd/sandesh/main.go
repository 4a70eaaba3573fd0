package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/SandeshLive/Sandesh/app/repository"
	"github.com/SandeshLive/Sandesh/internal/pkg/cache"
	"github.com/SandeshLive/Sandesh/internal/pkg/constants"
	"github.com/SandeshLive/Sandesh/internal/pkg/database"
	"github.com/SandeshLive/Sandesh/internal/pkg/env"
	"github.com/SandeshLive/Sandesh/internal/pkg/router"
	"github.com/SandeshLive/Sandesh/internal/pkg/seed"
	"github.com/SandeshLive/Sandesh/internal/pkg/storage"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "0.0.0.0"), env.GetEnv("APP_PORT", "5000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	if err := seed.Run(repository.GetGlobalRepositories()); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/sandesh to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	store, err := storage.NewLocalStore(env.GetEnv("UPLOAD_DIR", basePath+constants.UploadsPath))
	if err != nil {
		log.Fatalf("upload storage failed: %v", err)
	}
	if mirror, err := storage.NewMirrorFromEnv(); err != nil {
		log.Fatalf("storage mirror failed: %v", err)
	} else if mirror != nil {
		store = store.WithMirror(mirror)
	}

	// init fiber app; the body limit leaves headroom over the 500 MB video
	// cap so the policy check answers 400 before fiber answers 413
	app := fiber.New(fiber.Config{
		Views:     html.New(basePath+"views", ".html"),
		BodyLimit: 536870912, // 512 MiB
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: env.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, store)

	return app
}

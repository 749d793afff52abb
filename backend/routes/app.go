package routes

import (
	"log"

	"elearning/backend/config"
	"elearning/backend/middleware"
	"elearning/backend/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp собирает Fiber приложение со всеми middleware и маршрутами
func NewApp(st store.Store, cfg *config.Config, logger *log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Learning Catalog",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggingMiddleware(logger))

	SetupRoutes(app, st, cfg)
	return app
}

package routes

import (
	"planvite.app/configs"
	"planvite.app/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes wires the global middleware and every route group onto app.
func SetupRoutes(app *fiber.App, cfg *configs.Config, authHandler *handlers.AuthHandler, eventHandler *handlers.EventHandler) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check; the only route outside the auth middleware.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Collaborative Event Planner API is running")
	})

	registerAuthRoutes(app, authHandler)
	registerEventRoutes(app, cfg, eventHandler)

	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
}

package routes

import (
	"planvite.app/handlers"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)
}

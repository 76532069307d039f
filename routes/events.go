package routes

import (
	"planvite.app/configs"
	"planvite.app/handlers"
	"planvite.app/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerEventRoutes(app *fiber.App, cfg *configs.Config, h *handlers.EventHandler) {
	eventGroup := app.Group("/api/events")
	eventGroup.Use(middlewares.JWTProtected(cfg.JWTSecret))

	eventGroup.Post("/", h.CreateEvent)
	eventGroup.Get("/", h.ListEvents)
	eventGroup.Put("/:id", h.UpdateEvent)
	eventGroup.Delete("/:id", h.DeleteEvent)
	eventGroup.Put("/:id/rsvp", h.SetRSVP)
	eventGroup.Post("/:id/comments", h.AddComment)
	eventGroup.Get("/:id/comments", h.ListComments)
}

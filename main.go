package main

import (
	"planvite.app/configs"
	"planvite.app/configs/configsdatabase"
	"planvite.app/configs/configslog"
	"planvite.app/handlers"
	"planvite.app/routes"
	"planvite.app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.Load()

	db, err := configsdatabase.Connect()
	if err != nil {
		configslog.Log.Fatal("database connection failed", zap.Error(err))
	}
	defer configsdatabase.Close(db)

	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTExpiry)
	eventService := services.NewEventService(db, services.EventServiceOptions{
		CommentsMembersOnly: cfg.CommentsMembersOnly,
	})

	app := fiber.New(fiber.Config{AppName: "planvite"})
	routes.SetupRoutes(app, cfg, handlers.NewAuthHandler(authService), handlers.NewEventHandler(eventService))

	configslog.SLog.Infof("server started on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Fatal("server stopped", zap.Error(err))
	}
}

package routes

import (
	"amt-blocking-backend/internal/handler"
	"amt-blocking-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewAuthHandler(userRepo)

	api := app.Group("/api/auth")
	api.Post("/login", hdl.Login)
}

package routes

import (
	"amt-blocking-backend/internal/handler"
	"amt-blocking-backend/internal/middleware"
	"amt-blocking-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	kasusRepo := repository.NewKasusRepository(db)
	hdl := handler.NewDashboardHandler(kasusRepo)

	api := app.Group("/api/dashboard", middleware.Auth)

	api.Get("/stats", hdl.GetStats)
}

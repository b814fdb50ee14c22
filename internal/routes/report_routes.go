package routes

import (
	"amt-blocking-backend/internal/handler"
	"amt-blocking-backend/internal/middleware"
	"amt-blocking-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	kasusRepo := repository.NewKasusRepository(db)
	hdl := handler.NewReportHandler(kasusRepo)

	api := app.Group("/api/report", middleware.Auth)

	api.Get("/tracing.csv", hdl.ExportTracing)
	api.Get("/blocked.csv", hdl.ExportBlocked)
}

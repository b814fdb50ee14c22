package routes

import (
	"amt-blocking-backend/internal/handler"
	"amt-blocking-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// View Mode untuk monitor publik di terminal: read-only, tanpa login.
func SetupViewRoutes(app *fiber.App, db *gorm.DB) {
	kasusRepo := repository.NewKasusRepository(db)
	hdl := handler.NewViewHandler(kasusRepo)

	api := app.Group("/api/view")

	api.Get("/kasus", hdl.GetCases)
}

package routes

import (
	"amt-blocking-backend/internal/handler"
	"amt-blocking-backend/internal/middleware"
	"amt-blocking-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLokasiRoutes(app *fiber.App, db *gorm.DB) {
	lokasiRepo := repository.NewLokasiRepository(db)
	hdl := handler.NewLokasiHandler(lokasiRepo)

	api := app.Group("/api/lokasi", middleware.Auth)

	api.Get("/", hdl.GetAll)
}

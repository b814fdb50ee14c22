package routes

import (
	"amt-blocking-backend/internal/handler"
	"amt-blocking-backend/internal/middleware"
	"amt-blocking-backend/internal/repository"
	"amt-blocking-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPelanggaranRoutes(app *fiber.App, db *gorm.DB) {
	pelanggaranRepo := repository.NewPelanggaranRepository(db)
	uc := usecase.NewPelanggaranUsecase(pelanggaranRepo)
	hdl := handler.NewPelanggaranHandler(uc)

	api := app.Group("/api/pelanggaran", middleware.Auth)

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Delete("/:id", hdl.Delete)
}

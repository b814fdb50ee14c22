package routes

import (
	"amt-blocking-backend/internal/handler"
	"amt-blocking-backend/internal/middleware"
	"amt-blocking-backend/internal/repository"
	"amt-blocking-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAMTRoutes(app *fiber.App, db *gorm.DB) {
	kasusRepo := repository.NewKasusRepository(db)
	amtRepo := repository.NewAMTRepository(db)
	lokasiRepo := repository.NewLokasiRepository(db)
	pelanggaranRepo := repository.NewPelanggaranRepository(db)

	uc := usecase.NewKasusUsecase(kasusRepo, amtRepo, lokasiRepo, pelanggaranRepo)
	hdl := handler.NewAMTHandler(amtRepo, uc)

	api := app.Group("/api/amt", middleware.Auth)

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
}

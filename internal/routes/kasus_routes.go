package routes

import (
	"amt-blocking-backend/internal/handler"
	"amt-blocking-backend/internal/mailer"
	"amt-blocking-backend/internal/middleware"
	"amt-blocking-backend/internal/repository"
	"amt-blocking-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupKasusRoutes(app *fiber.App, db *gorm.DB) {
	kasusRepo := repository.NewKasusRepository(db)
	amtRepo := repository.NewAMTRepository(db)
	lokasiRepo := repository.NewLokasiRepository(db)
	pelanggaranRepo := repository.NewPelanggaranRepository(db)

	uc := usecase.NewKasusUsecase(kasusRepo, amtRepo, lokasiRepo, pelanggaranRepo)
	hdl := handler.NewKasusHandler(uc, kasusRepo, mailer.NewFromEnv())

	// Grouping route khusus kasus pemblokiran
	api := app.Group("/api/kasus", middleware.Auth)

	api.Post("/block", hdl.Block)
	api.Get("/", hdl.GetAll)
	api.Get("/blocked", hdl.GetBlocked)
	api.Get("/pemutihan", hdl.GetPemutihan)
	api.Get("/suggest/:amtId", hdl.Suggest)
	api.Post("/:id/unblock", hdl.Unblock)
	api.Put("/:id", hdl.Update)
}

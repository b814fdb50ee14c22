package main

import (
	"fmt"

	"amt-blocking-backend/config"
	"amt-blocking-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal (Debugging)

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupKasusRoutes(app, config.DB)
	routes.SetupAMTRoutes(app, config.DB)
	routes.SetupPelanggaranRoutes(app, config.DB)
	routes.SetupLokasiRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)
	routes.SetupReportRoutes(app, config.DB)
	routes.SetupViewRoutes(app, config.DB)

	port := config.GetEnv("APP_PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}

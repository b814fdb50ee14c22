package main

import (
	"fmt"
	"log"
	"os"

	"amt-blocking-backend/config"
	"amt-blocking-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("🌱 Memulai Database Seeding...")

	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	fmt.Println("🚀 Menjalankan SeedAll...")
	database.SeedAll(config.DB)

	// Jalankan dengan argumen "contoh" untuk mengisi data demo
	if len(os.Args) > 1 && os.Args[1] == "contoh" {
		fmt.Println("🚀 Menjalankan SeedContoh...")
		database.SeedContoh(config.DB)
	}

	fmt.Println("✅ Seeding Selesai!")
}

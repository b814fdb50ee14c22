package handler

import (
	"amt-blocking-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type LokasiHandler struct {
	repo repository.LokasiRepository
}

func NewLokasiHandler(repo repository.LokasiRepository) *LokasiHandler {
	return &LokasiHandler{repo: repo}
}

func (h *LokasiHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data lokasi"})
	}
	return c.JSON(fiber.Map{"data": list})
}

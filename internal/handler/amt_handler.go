package handler

import (
	"amt-blocking-backend/internal/repository"
	"amt-blocking-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AMTHandler struct {
	repo    repository.AMTRepository
	usecase *usecase.KasusUsecase
}

func NewAMTHandler(repo repository.AMTRepository, uc *usecase.KasusUsecase) *AMTHandler {
	return &AMTHandler{repo: repo, usecase: uc}
}

func (h *AMTHandler) GetAll(c *fiber.Ctx) error {
	search := c.Query("search")
	amts, err := h.repo.GetAll(search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data AMT"})
	}
	return c.JSON(fiber.Map{"data": amts})
}

type CreateAMTRequest struct {
	Nama         string `json:"nama" validate:"required"`
	Role         string `json:"role" validate:"required"`
	NomorPekerja string `json:"nomor_pekerja"`
	LokasiID     uint   `json:"lokasi_id" validate:"required"`
}

// Create menambah AMT manual dari panel admin. Lewat jalur yang sama dengan
// form blokir: nama dinormalisasi, dan kalau (nama, role) sudah ada, record
// lama yang dikembalikan.
func (h *AMTHandler) Create(c *fiber.Ctx) error {
	var req CreateAMTRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama, role, dan lokasi wajib diisi"})
	}

	amt, err := h.usecase.FindOrCreateAMT(req.Nama, req.Role, req.NomorPekerja, req.LokasiID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan data AMT"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Data AMT tersimpan",
		"data":    amt,
	})
}

package handler

import (
	"errors"
	"strconv"

	"amt-blocking-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PelanggaranHandler struct {
	usecase *usecase.PelanggaranUsecase
}

func NewPelanggaranHandler(uc *usecase.PelanggaranUsecase) *PelanggaranHandler {
	return &PelanggaranHandler{usecase: uc}
}

func (h *PelanggaranHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.usecase.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jenis pelanggaran"})
	}
	return c.JSON(fiber.Map{"data": list})
}

type CreatePelanggaranRequest struct {
	NamaPelanggaran string `json:"nama_pelanggaran" validate:"required"`
}

func (h *PelanggaranHandler) Create(c *fiber.Ctx) error {
	var req CreatePelanggaranRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama pelanggaran wajib diisi"})
	}

	pelanggaran, err := h.usecase.Add(req.NamaPelanggaran)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah jenis pelanggaran"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Jenis pelanggaran ditambahkan",
		"data":    pelanggaran,
	})
}

func (h *PelanggaranHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.usecase.Delete(uint(id)); err != nil {
		if errors.Is(err, usecase.ErrPelanggaranBawaan) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jenis pelanggaran tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus jenis pelanggaran"})
	}

	return c.JSON(fiber.Map{"message": "Jenis pelanggaran dihapus"})
}

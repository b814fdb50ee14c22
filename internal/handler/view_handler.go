package handler

import (
	"sort"

	"amt-blocking-backend/internal/model"
	"amt-blocking-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// ViewHandler melayani mode tampilan publik (monitor di terminal),
// read-only dan tanpa login.
type ViewHandler struct {
	kasusRepo repository.KasusRepository
}

func NewViewHandler(kasusRepo repository.KasusRepository) *ViewHandler {
	return &ViewHandler{kasusRepo: kasusRepo}
}

// GetCases mengembalikan daftar kasus untuk layar monitoring:
// kasus BLOCKED selalu di atas, sisanya urut tanggal blokir terbaru.
func (h *ViewHandler) GetCases(c *fiber.Ctx) error {
	cases, err := h.kasusRepo.GetAll(filterFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data kasus"})
	}

	sort.SliceStable(cases, func(i, j int) bool {
		if (cases[i].Status == model.StatusBlocked) != (cases[j].Status == model.StatusBlocked) {
			return cases[i].Status == model.StatusBlocked
		}
		return cases[i].TanggalBlokir > cases[j].TanggalBlokir
	})

	blocked, unblocked, phk := hitungRingkasan(cases)

	return c.JSON(fiber.Map{
		"summary": fiber.Map{
			"total_blocked":   blocked,
			"total_unblocked": unblocked,
			"total_phk":       phk,
		},
		"data": cases,
	})
}

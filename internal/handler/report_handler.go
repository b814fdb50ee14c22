package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"amt-blocking-backend/internal/model"
	"amt-blocking-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	kasusRepo repository.KasusRepository
}

func NewReportHandler(kasusRepo repository.KasusRepository) *ReportHandler {
	return &ReportHandler{kasusRepo: kasusRepo}
}

func atauStrip(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// buildTracingCSV menyusun isi file "Tracing List Riwayat Pelanggaran".
// Proyeksi murni dari daftar kasus, tanpa keputusan apa pun.
func buildTracingCSV(cases []model.Kasus) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"No", "Nama AMT", "Jabatan", "Lokasi", "Jenis Pelanggaran", "Status",
		"Tanggal Blokir", "Tanggal Unblock", "Level Punishment",
		"Tanggal Berakhir Sanksi", "Catatan BAP",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, c := range cases {
		row := []string{
			strconv.Itoa(i + 1),
			c.NamaAMT,
			c.RoleAMT,
			c.LokasiAMT,
			c.NamaPelanggaran,
			c.Status,
			c.TanggalBlokir,
			atauStrip(c.TanggalUnblock),
			atauStrip(string(c.PunishmentLevel)),
			atauStrip(c.TanggalBerakhirSanksi),
			c.Catatan,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}

// buildBlockedCSV menyusun isi file daftar AMT yang masih terblokir.
func buildBlockedCSV(cases []model.Kasus) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"No", "Nama AMT", "Jabatan", "Lokasi", "Jenis Pelanggaran",
		"Tanggal Blokir", "Catatan",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, c := range cases {
		row := []string{
			strconv.Itoa(i + 1),
			c.NamaAMT,
			c.RoleAMT,
			c.LokasiAMT,
			c.NamaPelanggaran,
			c.TanggalBlokir,
			c.Catatan,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}

func (h *ReportHandler) kirimCSV(c *fiber.Ctx, isi, prefix string) error {
	timestamp := time.Now().Format("20060102_150405")
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="`+prefix+`_`+timestamp+`.csv"`)
	return c.SendString(isi)
}

// ExportTracing mengunduh Tracing List sesuai filter yang sedang aktif
// (filter yang sama dengan tampilan daftar kasus).
func (h *ReportHandler) ExportTracing(c *fiber.Ctx) error {
	cases, err := h.kasusRepo.GetAll(filterFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data kasus"})
	}
	if len(cases) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tidak ada data untuk diekspor sesuai filter saat ini"})
	}

	isi, err := buildTracingCSV(cases)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun file CSV"})
	}
	return h.kirimCSV(c, isi, "Tracing_List_AMT")
}

// ExportBlocked mengunduh daftar AMT yang masih BLOCKED.
func (h *ReportHandler) ExportBlocked(c *fiber.Ctx) error {
	filter := filterFromQuery(c)
	filter.Status = model.StatusBlocked
	cases, err := h.kasusRepo.GetAll(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data kasus"})
	}
	if len(cases) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tidak ada data untuk diekspor sesuai filter saat ini"})
	}

	isi, err := buildBlockedCSV(cases)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun file CSV"})
	}
	return h.kirimCSV(c, isi, "Blocked_AMT_List")
}

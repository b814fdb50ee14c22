package handler

import (
	"sort"

	"amt-blocking-backend/internal/model"
	"amt-blocking-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	kasusRepo repository.KasusRepository
}

func NewDashboardHandler(kasusRepo repository.KasusRepository) *DashboardHandler {
	return &DashboardHandler{kasusRepo: kasusRepo}
}

// NamaJumlah adalah satu baris data agregasi untuk chart.
type NamaJumlah struct {
	Nama   string `json:"nama"`
	Jumlah int    `json:"jumlah"`
}

// hitungRingkasan menghitung kartu ringkasan dashboard.
func hitungRingkasan(cases []model.Kasus) (blocked, unblocked, phk int) {
	for _, c := range cases {
		switch c.Status {
		case model.StatusBlocked:
			blocked++
		case model.StatusUnblocked:
			unblocked++
		}
		if c.PunishmentLevel == model.LevelPHK {
			phk++
		}
	}
	return
}

// distribusiPelanggaran menghitung jumlah kasus per jenis pelanggaran,
// terurut dari yang paling sering.
func distribusiPelanggaran(cases []model.Kasus) []NamaJumlah {
	counts := make(map[string]int)
	for _, c := range cases {
		counts[c.NamaPelanggaran]++
	}
	return urutkanDesc(counts, 0)
}

// topLokasi menghitung 10 lokasi dengan kasus terbanyak.
func topLokasi(cases []model.Kasus) []NamaJumlah {
	counts := make(map[string]int)
	for _, c := range cases {
		counts[c.LokasiAMT]++
	}
	return urutkanDesc(counts, 10)
}

// trendBulanan menghitung jumlah pemblokiran per bulan, key YYYY-MM
// agar urut kronologis.
func trendBulanan(cases []model.Kasus) []NamaJumlah {
	counts := make(map[string]int)
	for _, c := range cases {
		if len(c.TanggalBlokir) < 7 {
			continue
		}
		counts[c.TanggalBlokir[:7]]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	hasil := make([]NamaJumlah, 0, len(keys))
	for _, k := range keys {
		hasil = append(hasil, NamaJumlah{Nama: k, Jumlah: counts[k]})
	}
	return hasil
}

func urutkanDesc(counts map[string]int, limit int) []NamaJumlah {
	hasil := make([]NamaJumlah, 0, len(counts))
	for nama, jumlah := range counts {
		hasil = append(hasil, NamaJumlah{Nama: nama, Jumlah: jumlah})
	}
	sort.Slice(hasil, func(i, j int) bool {
		if hasil[i].Jumlah != hasil[j].Jumlah {
			return hasil[i].Jumlah > hasil[j].Jumlah
		}
		return hasil[i].Nama < hasil[j].Nama
	})
	if limit > 0 && len(hasil) > limit {
		hasil = hasil[:limit]
	}
	return hasil
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	cases, err := h.kasusRepo.GetAll(repository.KasusFilter{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data dashboard"})
	}

	blocked, unblocked, phk := hitungRingkasan(cases)

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data": fiber.Map{
			"total_blocked":          blocked,
			"total_unblocked":        unblocked,
			"total_phk":              phk,
			"distribusi_pelanggaran": distribusiPelanggaran(cases),
			"top_lokasi":             topLokasi(cases),
			"trend_bulanan":          trendBulanan(cases),
		},
	})
}

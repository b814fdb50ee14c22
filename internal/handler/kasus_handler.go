package handler

import (
	"errors"
	"strconv"

	"amt-blocking-backend/internal/mailer"
	"amt-blocking-backend/internal/model"
	"amt-blocking-backend/internal/repository"
	"amt-blocking-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

type KasusHandler struct {
	usecase   *usecase.KasusUsecase
	kasusRepo repository.KasusRepository
	mailer    *mailer.Mailer
}

func NewKasusHandler(uc *usecase.KasusUsecase, kasusRepo repository.KasusRepository, m *mailer.Mailer) *KasusHandler {
	return &KasusHandler{usecase: uc, kasusRepo: kasusRepo, mailer: m}
}

// filterFromQuery membaca query param filter yang dipakai bersama oleh
// list kasus, list blocked, dan export CSV.
func filterFromQuery(c *fiber.Ctx) repository.KasusFilter {
	return repository.KasusFilter{
		Lokasi: c.Query("lokasi"),
		Nama:   c.Query("nama"),
		Role:   c.Query("role"),
		Status: c.Query("status"),
	}
}

type BlockRequest struct {
	Nama               string `json:"nama" validate:"required"`
	Role               string `json:"role" validate:"required"`
	NomorPekerja       string `json:"nomor_pekerja"`
	LokasiID           uint   `json:"lokasi_id" validate:"required"`
	JenisPelanggaranID uint   `json:"jenis_pelanggaran_id" validate:"required"`
	TanggalBlokir      string `json:"tanggal_blokir" validate:"required,datetime=2006-01-02"`
	Catatan            string `json:"catatan"`
}

// Block memproses form pemblokiran: nama AMT dinormalisasi dulu, dicek
// apakah sudah pernah tercatat (nama + role), baru kasus BLOCKED dibuat.
func (h *KasusHandler) Block(c *fiber.Ctx) error {
	var req BlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Semua field wajib diisi", "detail": err.Error()})
	}

	amt, err := h.usecase.FindOrCreateAMT(req.Nama, req.Role, req.NomorPekerja, req.LokasiID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan data AMT"})
	}

	kasus, err := h.usecase.CreateBlockCase(amt.ID, req.JenisPelanggaranID, req.TanggalBlokir, req.Catatan)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "AMT atau jenis pelanggaran tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan kasus"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "AMT " + amt.Nama + " berhasil diblokir",
		"data":    kasus,
	})
}

// GetAll mengembalikan riwayat kasus (Tracing List) sesuai filter.
func (h *KasusHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.kasusRepo.GetAll(filterFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data kasus"})
	}
	return c.JSON(fiber.Map{"data": list})
}

// GetBlocked mengembalikan kasus yang masih BLOCKED untuk proses unblock.
func (h *KasusHandler) GetBlocked(c *fiber.Ctx) error {
	filter := filterFromQuery(c)
	filter.Status = model.StatusBlocked
	list, err := h.kasusRepo.GetAll(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data kasus"})
	}
	return c.JSON(fiber.Map{"data": list})
}

// Suggest memberi rekomendasi level sanksi untuk modal BAP.
// Hasilnya hanya saran, operator bisa memilih level lain saat submit.
func (h *KasusHandler) Suggest(c *fiber.Ctx) error {
	amtID, err := strconv.Atoi(c.Params("amtId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID AMT tidak valid"})
	}

	level, err := h.usecase.SuggestPunishment(uint(amtID), h.usecase.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung rekomendasi sanksi"})
	}

	active, err := h.usecase.GetActivePunishment(uint(amtID), h.usecase.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil sanksi aktif"})
	}

	return c.JSON(fiber.Map{
		"suggested_level": level,
		"active":          active,
	})
}

type UnblockRequest struct {
	TanggalUnblock  string                `json:"tanggal_unblock" validate:"required,datetime=2006-01-02"`
	PunishmentLevel model.PunishmentLevel `json:"punishment_level" validate:"required"`
	Catatan         string                `json:"catatan"`
}

// Unblock memproses BAP: satu-satunya transisi status dalam sistem.
func (h *KasusHandler) Unblock(c *fiber.Ctx) error {
	kasusID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID kasus tidak valid"})
	}

	var req UnblockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tanggal unblock dan level sanksi wajib diisi"})
	}
	if !req.PunishmentLevel.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Level sanksi tidak dikenal"})
	}

	kasus, err := h.usecase.ProcessUnblock(uint(kasusID), req.TanggalUnblock, req.PunishmentLevel, req.Catatan)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kasus tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memproses unblock"})
	}

	// Keputusan PHK diteruskan ke management via email
	if req.PunishmentLevel == model.LevelPHK {
		go h.mailer.KirimNotifikasiPHK(kasus)
	}

	return c.JSON(fiber.Map{
		"message": "Unblock diproses & BAP tercatat",
		"data":    kasus,
	})
}

type SusulanRequest struct {
	PunishmentLevel       *model.PunishmentLevel `json:"punishment_level"`
	TanggalBerakhirSanksi *string                `json:"tanggal_berakhir_sanksi"`
	Catatan               *string                `json:"catatan"`
}

// Update mengoreksi sanksi secara susulan pada kasus yang sudah UNBLOCKED.
func (h *KasusHandler) Update(c *fiber.Ctx) error {
	kasusID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID kasus tidak valid"})
	}

	var req SusulanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.PunishmentLevel != nil && !req.PunishmentLevel.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Level sanksi tidak dikenal"})
	}

	// Saat level diubah jadi PHK, tanggal berakhir otomatis "Permanent"
	if req.PunishmentLevel != nil && *req.PunishmentLevel == model.LevelPHK {
		permanent := model.TanggalPermanent
		req.TanggalBerakhirSanksi = &permanent
	}

	kasus, err := h.usecase.UpdateKasus(uint(kasusID), usecase.SusulanUpdate{
		PunishmentLevel:       req.PunishmentLevel,
		TanggalBerakhirSanksi: req.TanggalBerakhirSanksi,
		Catatan:               req.Catatan,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kasus tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui kasus"})
	}

	return c.JSON(fiber.Map{
		"message": "Data kasus berhasil diperbarui",
		"data":    kasus,
	})
}

// GetPemutihan menandai kasus mana saja yang sanksinya sudah lewat masa
// berlaku. Status pemutihan dihitung ulang setiap request dari tanggal hari
// ini, tidak pernah disimpan.
func (h *KasusHandler) GetPemutihan(c *fiber.Ctx) error {
	filter := filterFromQuery(c)
	filter.Status = model.StatusUnblocked
	list, err := h.kasusRepo.GetAll(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data kasus"})
	}

	today := h.usecase.Now()
	var hasil []fiber.Map
	for i := range list {
		if usecase.SudahPemutihan(&list[i], today) {
			hasil = append(hasil, fiber.Map{
				"kasus":     list[i],
				"pemutihan": true,
			})
		}
	}

	return c.JSON(fiber.Map{
		"tanggal_evaluasi": today.Format("2006-01-02"),
		"data":             hasil,
	})
}

package usecase

import (
	"errors"
	"sort"
	"strings"
	"time"
	"unicode"

	"amt-blocking-backend/internal/model"
	"amt-blocking-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const formatTanggal = "2006-01-02"

// ActivePunishment adalah hasil pengecekan sanksi yang masih berjalan
// untuk seorang AMT.
type ActivePunishment struct {
	Level          model.PunishmentLevel `json:"level"`
	TanggalBerakhir string               `json:"tanggal_berakhir"`
}

type KasusUsecase struct {
	kasusRepo       repository.KasusRepository
	amtRepo         repository.AMTRepository
	lokasiRepo      repository.LokasiRepository
	pelanggaranRepo repository.PelanggaranRepository

	// Now bisa diganti di test agar logika pemutihan deterministik
	Now func() time.Time
}

func NewKasusUsecase(
	kasusRepo repository.KasusRepository,
	amtRepo repository.AMTRepository,
	lokasiRepo repository.LokasiRepository,
	pelanggaranRepo repository.PelanggaranRepository,
) *KasusUsecase {
	return &KasusUsecase{
		kasusRepo:       kasusRepo,
		amtRepo:         amtRepo,
		lokasiRepo:      lokasiRepo,
		pelanggaranRepo: pelanggaranRepo,
		Now:             time.Now,
	}
}

// NormalizeName menstandarkan penulisan nama AMT:
// 1. Spasi ganda diubah jadi satu
// 2. Spasi di awal/akhir dihapus
// 3. Huruf kapital di setiap awal kata, sisanya huruf kecil
// Idempoten: memanggil dua kali memberi hasil yang sama.
func NormalizeName(raw string) string {
	words := strings.Fields(strings.ToLower(raw))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// FindOrCreateAMT mencari AMT berdasarkan (nama ternormalisasi, role).
// Jika sudah ada, record lama dipakai apa adanya (lokasi TIDAK ikut
// diperbarui). Jika belum ada, AMT baru dibuat di lokasi yang dikirim.
//
// Catatan: identitas di sini memang soft — dua orang berbeda dengan nama
// dan role persis sama akan dianggap satu orang. Nomor pekerja hanya
// informasi tambahan, bukan kunci identitas.
func (u *KasusUsecase) FindOrCreateAMT(nama, role, nomorPekerja string, lokasiID uint) (*model.AMT, error) {
	fixedName := NormalizeName(nama)

	amt, err := u.amtRepo.FindByNamaAndRole(fixedName, role)
	if err == nil {
		return amt, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if nomorPekerja == "" {
		nomorPekerja = "EPN-" + strings.ToUpper(uuid.NewString()[:8])
	}

	baru := &model.AMT{
		Nama:         fixedName,
		Role:         role,
		NomorPekerja: nomorPekerja,
		LokasiID:     lokasiID,
	}
	if err := u.amtRepo.Create(baru); err != nil {
		return nil, err
	}
	return baru, nil
}

// CreateBlockCase membuat kasus pemblokiran baru dengan status BLOCKED.
// AMT dan jenis pelanggaran wajib ada — operasi gagal tanpa menulis apa pun
// jika salah satunya tidak ditemukan. Lokasi hanya untuk snapshot tampilan,
// jadi kalau lookup-nya gagal dipakai placeholder "Unknown".
//
// Sengaja tidak ada deteksi duplikat: satu AMT boleh punya beberapa kasus
// BLOCKED sekaligus, karena pelacakan pelanggaran berulang bergantung padanya.
func (u *KasusUsecase) CreateBlockCase(amtID, pelanggaranID uint, tanggalBlokir, catatan string) (*model.Kasus, error) {
	amt, err := u.amtRepo.FindByID(amtID)
	if err != nil {
		return nil, err
	}
	pelanggaran, err := u.pelanggaranRepo.FindByID(pelanggaranID)
	if err != nil {
		return nil, err
	}

	lokasiNama := "Unknown"
	if lokasi, err := u.lokasiRepo.FindByID(amt.LokasiID); err == nil {
		lokasiNama = lokasi.NamaLokasi
	}

	kasus := &model.Kasus{
		NomorKasus:         uuid.NewString(),
		AMTID:              amt.ID,
		NamaAMT:            amt.Nama,
		RoleAMT:            amt.Role,
		LokasiAMT:          lokasiNama,
		JenisPelanggaranID: pelanggaran.ID,
		NamaPelanggaran:    pelanggaran.NamaPelanggaran,
		Status:             model.StatusBlocked,
		TanggalBlokir:      tanggalBlokir,
		Catatan:            catatan,
	}
	if err := u.kasusRepo.Create(kasus); err != nil {
		return nil, err
	}
	return kasus, nil
}

// ProcessUnblock memproses BAP: transisi satu-satunya dalam sistem,
// BLOCKED -> UNBLOCKED, dan tidak bisa dibalik (tidak ada re-block).
// Tanggal berakhir sanksi dihitung dari tanggal unblock + durasi level;
// khusus PHK dipakai sentinel "Permanent".
// Kasus yang tidak ditemukan mengembalikan gorm.ErrRecordNotFound
// tanpa menulis apa pun.
func (u *KasusUsecase) ProcessUnblock(kasusID uint, tanggalUnblock string, level model.PunishmentLevel, catatan string) (*model.Kasus, error) {
	kasus, err := u.kasusRepo.FindByID(kasusID)
	if err != nil {
		return nil, err
	}

	tanggalBerakhir := model.TanggalPermanent
	if level != model.LevelPHK {
		mulai, err := time.Parse(formatTanggal, tanggalUnblock)
		if err != nil {
			return nil, err
		}
		durasi := model.DurasiPunishmentHari[level]
		tanggalBerakhir = mulai.AddDate(0, 0, durasi).Format(formatTanggal)
	}

	kasus.Status = model.StatusUnblocked
	kasus.TanggalUnblock = tanggalUnblock
	kasus.TanggalBAP = tanggalUnblock
	kasus.PunishmentLevel = level
	kasus.TanggalBerakhirSanksi = tanggalBerakhir
	kasus.Catatan = catatan

	if err := u.kasusRepo.Update(kasus); err != nil {
		return nil, err
	}
	return kasus, nil
}

// SusulanUpdate berisi field yang boleh dikoreksi setelah BAP tercatat.
// Field nil tidak diubah.
type SusulanUpdate struct {
	PunishmentLevel       *model.PunishmentLevel
	TanggalBerakhirSanksi *string
	Catatan               *string
}

// UpdateKasus mengoreksi data sanksi secara susulan pada kasus yang sudah
// UNBLOCKED. Konsistensi antar field adalah tanggung jawab pemanggil
// (contoh: saat mengubah level jadi PHK, pemanggil yang mengisi tanggal
// berakhir "Permanent").
func (u *KasusUsecase) UpdateKasus(kasusID uint, updates SusulanUpdate) (*model.Kasus, error) {
	kasus, err := u.kasusRepo.FindByID(kasusID)
	if err != nil {
		return nil, err
	}

	if updates.PunishmentLevel != nil {
		kasus.PunishmentLevel = *updates.PunishmentLevel
	}
	if updates.TanggalBerakhirSanksi != nil {
		kasus.TanggalBerakhirSanksi = *updates.TanggalBerakhirSanksi
	}
	if updates.Catatan != nil {
		kasus.Catatan = *updates.Catatan
	}

	if err := u.kasusRepo.Update(kasus); err != nil {
		return nil, err
	}
	return kasus, nil
}

// SudahPemutihan menentukan apakah sanksi sebuah kasus sudah lewat masa
// berlakunya. Record tetap tersimpan sebagai riwayat, tapi tidak dihitung
// sebagai sanksi aktif. Murni fungsi dari kasus + tanggal "hari ini" yang
// disuntikkan, tidak pernah membaca jam sistem sendiri.
// SP 3 dan PHK tidak pernah masuk pemutihan.
func SudahPemutihan(kasus *model.Kasus, today time.Time) bool {
	if kasus.Status != model.StatusUnblocked {
		return false
	}
	if kasus.TanggalBerakhirSanksi == "" || kasus.TanggalBerakhirSanksi == model.TanggalPermanent {
		return false
	}
	if kasus.PunishmentLevel == model.LevelPHK || kasus.PunishmentLevel == model.LevelSP3 {
		return false
	}
	// Perbandingan tanggal kalender ketat; string ISO aman dibandingkan leksikal
	return kasus.TanggalBerakhirSanksi < today.Format(formatTanggal)
}

// GetActivePunishment mencari sanksi yang masih berjalan untuk seorang AMT:
// kasus UNBLOCKED dengan tanggal unblock paling baru. PHK selalu dianggap
// aktif berapa pun umurnya, SP 3 tidak kedaluwarsa, sanksi lain yang sudah
// lewat tanggal berakhirnya dianggap bersih (pemutihan) dan hasilnya nil.
func (u *KasusUsecase) GetActivePunishment(amtID uint, today time.Time) (*ActivePunishment, error) {
	list, err := u.kasusRepo.GetUnblockedByAMTID(amtID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}

	// Stable sort: kalau tanggal unblock sama, urutan insert yang menang
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].TanggalUnblock > list[j].TanggalUnblock
	})
	terakhir := list[0]

	if terakhir.PunishmentLevel == model.LevelPHK {
		return &ActivePunishment{Level: model.LevelPHK, TanggalBerakhir: model.TanggalPermanent}, nil
	}
	if terakhir.PunishmentLevel == model.LevelSP3 {
		return &ActivePunishment{Level: model.LevelSP3, TanggalBerakhir: terakhir.TanggalBerakhirSanksi}, nil
	}

	if terakhir.TanggalBerakhirSanksi == "" {
		return nil, nil
	}
	if terakhir.TanggalBerakhirSanksi < today.Format(formatTanggal) {
		// Sudah pemutihan, AMT mulai dari nol lagi
		return nil, nil
	}

	return &ActivePunishment{
		Level:          terakhir.PunishmentLevel,
		TanggalBerakhir: terakhir.TanggalBerakhirSanksi,
	}, nil
}

// SuggestPunishment merekomendasikan level sanksi untuk proses BAP:
// tanpa sanksi aktif (belum pernah kena atau sudah pemutihan) mulai dari
// BAP/Coaching, selain itu naik tepat satu tingkat dari sanksi aktifnya.
// Rekomendasi ini hanya saran — operator bebas memilih level lain.
func (u *KasusUsecase) SuggestPunishment(amtID uint, today time.Time) (model.PunishmentLevel, error) {
	active, err := u.GetActivePunishment(amtID, today)
	if err != nil {
		return "", err
	}
	if active == nil {
		return model.LevelBAPCoaching, nil
	}
	return active.Level.Next(), nil
}

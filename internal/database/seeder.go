package database

import (
	"log"
	"time"

	"amt-blocking-backend/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Katalog lokasi Fuel Terminal / Integrated Terminal
var daftarLokasi = []string{
	"FT Krueng Raya", "FT Lhokseumawe", "FT Medan Group", "FT Sibolga", "FT Gunung Sitoli",
	"IT Teluk Kabung", "FT Sei Siak", "IT Dumai", "FT Indragiri Hilir", "IT Kertapati",
	"FT Jambi", "FT Pulau Baai", "FT Pangkal Balam", "FT Tanjung Pandan", "IT Panjang",
	"IT Manggis", "FT Sanggaran", "IT Ampenan", "FT Badas", "FT Bima", "FT Waingapu",
	"FT Tenau", "FT Maumere", "FT Ende", "FT Reo", "Depo Semper", "FT Atapupu",
	"PTPL Surabaya", "IT Pontianak", "IT Balikpapan", "FT Samarinda", "IT Banjarmasin",
	"Jobber Berau (Pengawas Utama)", "IT Makassar", "FT Parepare", "FT Palopo",
	"FT Donggala", "FT Gorontalo", "FT Moutong", "IT Bitung", "FT Kendari", "FT Baubau",
	"FT Pulau Raha", "FT Poso", "FT Kolonodale", "FT Tolitoli", "FT Kolaka", "FT Tahuna",
	"FT Banggai", "FT Luwuk", "FT Wayame", "FT Namlea", "FT Masohi", "FT Tobelo",
	"FT Jayapura", "FT Timika", "IT AVIASI SUMBAGSEL",
}

// Katalog pelanggaran bawaan sistem
var daftarPelanggaran = []string{
	"Overspeed", "Rotasi AMT", "Blackzone", "Tidak Koperatif", "Merokok",
	"Phone Detection", "Seatbelt Detection", "Merubah Arah Kamera",
	"Menutup Kamera Depan (DSM)", "Fraud", "Fraud Ownuse", "Laka Lantas",
}

// SeedAll mengisi data referensi. Idempoten: katalog yang sudah terisi
// tidak di-seed ulang.
func SeedAll(db *gorm.DB) {
	// 1. Seed Lokasi
	var jumlahLokasi int64
	db.Model(&model.Lokasi{}).Count(&jumlahLokasi)
	if jumlahLokasi == 0 {
		for _, nama := range daftarLokasi {
			db.Create(&model.Lokasi{NamaLokasi: nama})
		}
		log.Println("Seeding Lokasi berhasil!")
	}

	// 2. Seed Jenis Pelanggaran bawaan
	var jumlahPelanggaran int64
	db.Model(&model.JenisPelanggaran{}).Count(&jumlahPelanggaran)
	if jumlahPelanggaran == 0 {
		for _, nama := range daftarPelanggaran {
			db.Create(&model.JenisPelanggaran{NamaPelanggaran: nama, IsCustom: false})
		}
		log.Println("Seeding Jenis Pelanggaran berhasil!")
	}

	// 3. Seed Akun Admin Pertama
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("12345"), bcrypt.DefaultCost)
	admin := model.User{
		Nama:     "Administrator EPN",
		Username: "EPN",
		Password: string(hashedPassword),
	}
	result := db.FirstOrCreate(&admin, model.User{Username: admin.Username})
	if result.Error == nil {
		// Paksa update password agar selalu sinkron meskipun user sudah ada
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Seeding Admin berhasil!")
	}
}

// SeedContoh mengisi data contoh untuk demo: blokir aktif, sanksi berjalan,
// contoh pemutihan, dan satu kasus PHK. Jangan dipakai di production.
func SeedContoh(db *gorm.DB) {
	var jumlahAMT int64
	db.Model(&model.AMT{}).Count(&jumlahAMT)
	if jumlahAMT > 0 {
		return
	}

	var lokasi []model.Lokasi
	db.Find(&lokasi)
	var pelanggaran []model.JenisPelanggaran
	db.Find(&pelanggaran)
	if len(lokasi) == 0 || len(pelanggaran) == 0 {
		log.Println("Seed contoh dilewati: katalog referensi belum terisi")
		return
	}

	namaContoh := []string{
		"Budi Santoso", "Agus Pratama", "Dedi Kurniawan", "Eko Prasetyo", "Fajar Nugroho",
		"Guntur Wibowo", "Heri Susanto", "Iwan Setiawan", "Joko Widodo", "Kurniawan Dwi",
		"Lukman Hakim", "Muhammad Rizky", "Nanang Suherman", "Oki Saputra", "Pandu Wijaya",
		"Rian Hidayat", "Slamet Riyadi", "Tono Sutono", "Wahyu Illahi", "Zainal Abidin",
	}

	amts := make([]model.AMT, 0, len(namaContoh))
	for i, nama := range namaContoh {
		role := model.RoleAMT1
		if i%2 == 1 {
			role = model.RoleAMT2
		}
		amt := model.AMT{
			Nama:         nama,
			Role:         role,
			NomorPekerja: "EPN-" + uuid.NewString()[:8],
			LokasiID:     lokasi[i%len(lokasi)].ID,
		}
		db.Create(&amt)
		amts = append(amts, amt)
	}

	tanggal := func(hariLalu int) string {
		return time.Now().AddDate(0, 0, -hariLalu).Format("2006-01-02")
	}
	buatKasus := func(amt model.AMT, vio model.JenisPelanggaran) model.Kasus {
		var lok model.Lokasi
		lokasiNama := "Unknown"
		if err := db.First(&lok, amt.LokasiID).Error; err == nil {
			lokasiNama = lok.NamaLokasi
		}
		return model.Kasus{
			NomorKasus:         uuid.NewString(),
			AMTID:              amt.ID,
			NamaAMT:            amt.Nama,
			RoleAMT:            amt.Role,
			LokasiAMT:          lokasiNama,
			JenisPelanggaranID: vio.ID,
			NamaPelanggaran:    vio.NamaPelanggaran,
		}
	}

	// A. Blokir aktif
	for i := 0; i < 5; i++ {
		k := buatKasus(amts[i], pelanggaran[i%len(pelanggaran)])
		k.Status = model.StatusBlocked
		k.TanggalBlokir = tanggal(i)
		k.Catatan = "Indikasi pelanggaran terekam sistem."
		db.Create(&k)
	}

	// B. Sudah unblock, sanksi masih berjalan
	levelAktif := []model.PunishmentLevel{
		model.LevelBAPCoaching, model.LevelSuratTeguran, model.LevelSP1, model.LevelSP2, model.LevelSP3,
	}
	for i := 5; i < 15; i++ {
		level := levelAktif[i%len(levelAktif)]
		k := buatKasus(amts[i], pelanggaran[i%len(pelanggaran)])
		k.Status = model.StatusUnblocked
		k.TanggalBlokir = tanggal(7)
		k.TanggalUnblock = tanggal(0)
		k.TanggalBAP = k.TanggalUnblock
		k.PunishmentLevel = level
		k.TanggalBerakhirSanksi = time.Now().
			AddDate(0, 0, model.DurasiPunishmentHari[level]).Format("2006-01-02")
		k.Catatan = "BAP diproses via sistem (sanksi berjalan)."
		db.Create(&k)
	}

	// C. Contoh pemutihan: Surat Teguran 30 hari, kejadian 60 hari lalu
	for i := 15; i < 18; i++ {
		k := buatKasus(amts[i], pelanggaran[i%len(pelanggaran)])
		k.Status = model.StatusUnblocked
		k.TanggalBlokir = tanggal(60)
		k.TanggalUnblock = tanggal(58)
		k.TanggalBAP = k.TanggalUnblock
		k.PunishmentLevel = model.LevelSuratTeguran
		k.TanggalBerakhirSanksi = tanggal(28)
		k.Catatan = "Sanksi telah berakhir. Masuk masa pemutihan."
		db.Create(&k)
	}

	// D. Satu kasus PHK
	k := buatKasus(amts[19], pelanggaran[9%len(pelanggaran)])
	k.Status = model.StatusUnblocked
	k.TanggalBlokir = "2023-10-01"
	k.TanggalUnblock = "2023-10-05"
	k.TanggalBAP = k.TanggalUnblock
	k.PunishmentLevel = model.LevelPHK
	k.TanggalBerakhirSanksi = model.TanggalPermanent
	k.Catatan = "Pelanggaran berat (Fraud Ownuse). Diputuskan PHK."
	db.Create(&k)

	log.Println("Seeding data contoh berhasil!")
}

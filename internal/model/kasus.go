package model

import "gorm.io/gorm"

const (
	StatusBlocked   = "BLOCKED"
	StatusUnblocked = "UNBLOCKED"
)

// Kasus adalah record pemblokiran AMT. Dibuat dengan status BLOCKED,
// lalu berpindah tepat satu kali ke UNBLOCKED lewat proses BAP.
// Field Nama/Role/Lokasi/Pelanggaran adalah snapshot saat kasus dibuat
// dan tidak ikut berubah jika data AMT diubah belakangan.
type Kasus struct {
	gorm.Model
	NomorKasus string `json:"nomor_kasus" gorm:"unique;not null"`
	AMTID      uint   `json:"amt_id"`

	// Denormalisasi untuk kemudahan tampilan & export
	NamaAMT            string `json:"nama_amt"`
	RoleAMT            string `json:"role_amt"`
	LokasiAMT          string `json:"lokasi_amt"`
	JenisPelanggaranID uint   `json:"jenis_pelanggaran_id"`
	NamaPelanggaran    string `json:"nama_pelanggaran"`

	Status        string `json:"status" gorm:"not null"` // BLOCKED / UNBLOCKED
	TanggalBlokir string `json:"tanggal_blokir"`         // Format YYYY-MM-DD

	// Detail BAP, terisi saat proses unblock
	TanggalUnblock        string          `json:"tanggal_unblock"`
	TanggalBAP            string          `json:"tanggal_bap"`
	PunishmentLevel       PunishmentLevel `json:"punishment_level"`
	TanggalBerakhirSanksi string          `json:"tanggal_berakhir_sanksi"` // Tanggal ISO atau "Permanent"
	Catatan               string          `json:"catatan"`
}

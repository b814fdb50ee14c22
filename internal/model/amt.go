package model

import "gorm.io/gorm"

// Role AMT di atas mobil tangki
const (
	RoleAMT1 = "AMT 1" // Pengemudi utama
	RoleAMT2 = "AMT 2" // Pendamping
)

type AMT struct {
	gorm.Model
	Nama         string `json:"nama" gorm:"not null"` // Selalu tersimpan dalam format nama standar
	Role         string `json:"role" gorm:"not null"`
	NomorPekerja string `json:"nomor_pekerja"`
	LokasiID     uint   `json:"lokasi_id"`

	// Relasi
	Lokasi Lokasi  `json:"lokasi" gorm:"foreignKey:LokasiID"`
	Kasus  []Kasus `json:"kasus" gorm:"foreignKey:AMTID"`
}

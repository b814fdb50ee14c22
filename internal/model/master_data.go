package model

import "gorm.io/gorm"

// Lokasi adalah data referensi Fuel Terminal / Integrated Terminal.
// Dibuat sekali oleh seeder dan tidak diubah setelahnya.
type Lokasi struct {
	gorm.Model
	NamaLokasi string `json:"nama_lokasi" gorm:"unique;not null"`
}

// JenisPelanggaran berisi katalog pelanggaran.
// Entri bawaan (IsCustom=false) bersifat permanen, hanya entri custom
// yang boleh dihapus admin.
type JenisPelanggaran struct {
	gorm.Model
	NamaPelanggaran string `json:"nama_pelanggaran" gorm:"not null"`
	IsCustom        bool   `json:"is_custom" gorm:"default:false"`
}

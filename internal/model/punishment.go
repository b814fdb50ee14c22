package model

// Level sanksi terurut dari paling ringan ke paling berat.
type PunishmentLevel string

const (
	LevelNone         PunishmentLevel = "None"
	LevelBAPCoaching  PunishmentLevel = "BAP/Coaching"
	LevelSuratTeguran PunishmentLevel = "Surat Teguran"
	LevelSP1          PunishmentLevel = "SP 1"
	LevelSP2          PunishmentLevel = "SP 2"
	LevelSP3          PunishmentLevel = "SP 3"
	LevelPHK          PunishmentLevel = "PHK"
)

// Sentinel untuk sanksi PHK yang tidak pernah berakhir
const TanggalPermanent = "Permanent"

// Durasi monitoring sanksi dalam hari.
// SP 3 berlaku tanpa batas waktu (tidak ikut pemutihan otomatis),
// PHK bersifat permanen. Keduanya tidak punya durasi.
var DurasiPunishmentHari = map[PunishmentLevel]int{
	LevelNone:         0,
	LevelBAPCoaching:  30,
	LevelSuratTeguran: 30,
	LevelSP1:          90,
	LevelSP2:          180,
	LevelSP3:          0,
	LevelPHK:          0,
}

// Next mengembalikan level sanksi satu tingkat di atas level saat ini.
// PHK adalah level terakhir; jika sudah PHK (atau level tidak dikenal)
// rekomendasi kembali ke level paling bawah.
func (l PunishmentLevel) Next() PunishmentLevel {
	switch l {
	case LevelBAPCoaching:
		return LevelSuratTeguran
	case LevelSuratTeguran:
		return LevelSP1
	case LevelSP1:
		return LevelSP2
	case LevelSP2:
		return LevelSP3
	case LevelSP3:
		return LevelPHK
	default:
		return LevelBAPCoaching
	}
}

// Valid memastikan level yang dikirim client termasuk daftar resmi.
func (l PunishmentLevel) Valid() bool {
	_, ok := DurasiPunishmentHari[l]
	return ok
}

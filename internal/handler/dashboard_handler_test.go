package handler

import (
	"testing"

	"amt-blocking-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func kasusUntukStatistik() []model.Kasus {
	return []model.Kasus{
		{Status: model.StatusBlocked, NamaPelanggaran: "Overspeed", LokasiAMT: "IT Balikpapan", TanggalBlokir: "2024-05-01"},
		{Status: model.StatusBlocked, NamaPelanggaran: "Overspeed", LokasiAMT: "IT Balikpapan", TanggalBlokir: "2024-05-10"},
		{Status: model.StatusUnblocked, NamaPelanggaran: "Merokok", LokasiAMT: "FT Jambi", TanggalBlokir: "2024-04-20", PunishmentLevel: model.LevelSP1},
		{Status: model.StatusUnblocked, NamaPelanggaran: "Fraud", LokasiAMT: "FT Jambi", TanggalBlokir: "2024-03-05", PunishmentLevel: model.LevelPHK},
	}
}

func TestHitungRingkasan(t *testing.T) {
	blocked, unblocked, phk := hitungRingkasan(kasusUntukStatistik())
	assert.Equal(t, 2, blocked)
	assert.Equal(t, 2, unblocked)
	assert.Equal(t, 1, phk)
}

func TestDistribusiPelanggaran(t *testing.T) {
	hasil := distribusiPelanggaran(kasusUntukStatistik())
	assert.Len(t, hasil, 3)
	// Terurut dari yang paling sering
	assert.Equal(t, NamaJumlah{Nama: "Overspeed", Jumlah: 2}, hasil[0])
}

func TestTopLokasi(t *testing.T) {
	hasil := topLokasi(kasusUntukStatistik())
	assert.Len(t, hasil, 2)
	assert.Equal(t, 2, hasil[0].Jumlah)
}

func TestTopLokasiMaksimalSepuluh(t *testing.T) {
	var cases []model.Kasus
	for _, nama := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
		cases = append(cases, model.Kasus{LokasiAMT: nama})
	}
	assert.Len(t, topLokasi(cases), 10)
}

func TestTrendBulanan(t *testing.T) {
	hasil := trendBulanan(kasusUntukStatistik())
	// Key YYYY-MM terurut kronologis
	assert.Equal(t, []NamaJumlah{
		{Nama: "2024-03", Jumlah: 1},
		{Nama: "2024-04", Jumlah: 1},
		{Nama: "2024-05", Jumlah: 2},
	}, hasil)
}

package handler

import (
	"encoding/csv"
	"strings"
	"testing"

	"amt-blocking-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contohKasus() []model.Kasus {
	return []model.Kasus{
		{
			NamaAMT:         "Budi Santoso",
			RoleAMT:         model.RoleAMT1,
			LokasiAMT:       "IT Balikpapan",
			NamaPelanggaran: "Overspeed",
			Status:          model.StatusBlocked,
			TanggalBlokir:   "2024-05-01",
			Catatan:         `Catatan dengan "kutip", dan koma`,
		},
		{
			NamaAMT:               "Agus Pratama",
			RoleAMT:               model.RoleAMT2,
			LokasiAMT:             "FT Jambi",
			NamaPelanggaran:       "Merokok",
			Status:                model.StatusUnblocked,
			TanggalBlokir:         "2024-04-01",
			TanggalUnblock:        "2024-04-05",
			PunishmentLevel:       model.LevelSP1,
			TanggalBerakhirSanksi: "2024-07-04",
		},
	}
}

func TestBuildTracingCSV(t *testing.T) {
	isi, err := buildTracingCSV(contohKasus())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(isi)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header + 2 baris data")

	assert.Equal(t, []string{
		"No", "Nama AMT", "Jabatan", "Lokasi", "Jenis Pelanggaran", "Status",
		"Tanggal Blokir", "Tanggal Unblock", "Level Punishment",
		"Tanggal Berakhir Sanksi", "Catatan BAP",
	}, records[0])

	// Baris bernomor mulai dari 1
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "2", records[2][0])

	// Field kosong pada kasus BLOCKED jadi "-"
	assert.Equal(t, "-", records[1][7])
	assert.Equal(t, "-", records[1][8])
	assert.Equal(t, "-", records[1][9])

	// Kutip dan koma di catatan tidak merusak struktur CSV
	assert.Equal(t, `Catatan dengan "kutip", dan koma`, records[1][10])

	assert.Equal(t, "SP 1", records[2][8])
	assert.Equal(t, "2024-07-04", records[2][9])
}

func TestBuildBlockedCSV(t *testing.T) {
	isi, err := buildBlockedCSV(contohKasus()[:1])
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(isi)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"No", "Nama AMT", "Jabatan", "Lokasi", "Jenis Pelanggaran",
		"Tanggal Blokir", "Catatan",
	}, records[0])
	assert.Equal(t, "Budi Santoso", records[1][1])
	assert.Equal(t, "2024-05-01", records[1][5])
}

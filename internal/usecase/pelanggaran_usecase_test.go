package usecase

import (
	"testing"

	"amt-blocking-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPelanggaranUsecase(t *testing.T) (*PelanggaranUsecase, *fakePelanggaranRepo) {
	t.Helper()
	repo := &fakePelanggaranRepo{}
	require.NoError(t, repo.Create(&model.JenisPelanggaran{NamaPelanggaran: "Overspeed", IsCustom: false}))
	return NewPelanggaranUsecase(repo), repo
}

func TestAddPelanggaranCustom(t *testing.T) {
	uc, repo := newPelanggaranUsecase(t)

	pelanggaran, err := uc.Add("Parkir Sembarangan")
	require.NoError(t, err)
	assert.True(t, pelanggaran.IsCustom, "entri buatan admin selalu custom")

	count, _ := repo.Count()
	assert.Equal(t, int64(2), count)
}

func TestDeletePelanggaranCustom(t *testing.T) {
	uc, repo := newPelanggaranUsecase(t)

	pelanggaran, err := uc.Add("Parkir Sembarangan")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(pelanggaran.ID))
	count, _ := repo.Count()
	assert.Equal(t, int64(1), count)
}

func TestDeletePelanggaranBawaanDitolak(t *testing.T) {
	uc, repo := newPelanggaranUsecase(t)

	err := uc.Delete(1)
	assert.ErrorIs(t, err, ErrPelanggaranBawaan)

	// Entri bawaan tetap ada
	count, _ := repo.Count()
	assert.Equal(t, int64(1), count)
}

func TestDeletePelanggaranTidakDitemukan(t *testing.T) {
	uc, _ := newPelanggaranUsecase(t)
	err := uc.Delete(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

package usecase

import (
	"errors"

	"amt-blocking-backend/internal/model"
	"amt-blocking-backend/internal/repository"
)

// ErrPelanggaranBawaan dikembalikan saat admin mencoba menghapus jenis
// pelanggaran bawaan sistem. Hanya entri custom yang boleh dihapus.
var ErrPelanggaranBawaan = errors.New("jenis pelanggaran bawaan tidak boleh dihapus")

type PelanggaranUsecase struct {
	repo repository.PelanggaranRepository
}

func NewPelanggaranUsecase(repo repository.PelanggaranRepository) *PelanggaranUsecase {
	return &PelanggaranUsecase{repo: repo}
}

func (u *PelanggaranUsecase) GetAll() ([]model.JenisPelanggaran, error) {
	return u.repo.GetAll()
}

// Add menambahkan jenis pelanggaran custom. Entri yang dibuat admin selalu
// ditandai IsCustom agar bisa dibedakan dari katalog bawaan.
func (u *PelanggaranUsecase) Add(nama string) (*model.JenisPelanggaran, error) {
	pelanggaran := &model.JenisPelanggaran{
		NamaPelanggaran: nama,
		IsCustom:        true,
	}
	if err := u.repo.Create(pelanggaran); err != nil {
		return nil, err
	}
	return pelanggaran, nil
}

// Delete menghapus jenis pelanggaran custom. Permintaan hapus terhadap
// entri bawaan ditolak dengan ErrPelanggaranBawaan, bukan diabaikan diam-diam.
func (u *PelanggaranUsecase) Delete(id uint) error {
	pelanggaran, err := u.repo.FindByID(id)
	if err != nil {
		return err
	}
	if !pelanggaran.IsCustom {
		return ErrPelanggaranBawaan
	}
	return u.repo.Delete(id)
}

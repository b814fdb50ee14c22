package repository

import (
	"amt-blocking-backend/internal/model"

	"gorm.io/gorm"
)

type PelanggaranRepository interface {
	Create(pelanggaran *model.JenisPelanggaran) error
	FindByID(id uint) (*model.JenisPelanggaran, error)
	GetAll() ([]model.JenisPelanggaran, error)
	Delete(id uint) error
	Count() (int64, error)
}

type pelanggaranRepository struct {
	db *gorm.DB
}

func NewPelanggaranRepository(db *gorm.DB) PelanggaranRepository {
	return &pelanggaranRepository{db}
}

func (r *pelanggaranRepository) Create(pelanggaran *model.JenisPelanggaran) error {
	return r.db.Create(pelanggaran).Error
}

func (r *pelanggaranRepository) FindByID(id uint) (*model.JenisPelanggaran, error) {
	var pelanggaran model.JenisPelanggaran
	err := r.db.First(&pelanggaran, id).Error
	if err != nil {
		return nil, err
	}
	return &pelanggaran, nil
}

func (r *pelanggaranRepository) GetAll() ([]model.JenisPelanggaran, error) {
	var list []model.JenisPelanggaran
	err := r.db.Order("id asc").Find(&list).Error
	return list, err
}

func (r *pelanggaranRepository) Delete(id uint) error {
	return r.db.Delete(&model.JenisPelanggaran{}, id).Error
}

func (r *pelanggaranRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.JenisPelanggaran{}).Count(&count).Error
	return count, err
}

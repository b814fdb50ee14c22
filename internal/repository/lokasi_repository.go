package repository

import (
	"amt-blocking-backend/internal/model"

	"gorm.io/gorm"
)

type LokasiRepository interface {
	Create(lokasi *model.Lokasi) error
	FindByID(id uint) (*model.Lokasi, error)
	GetAll() ([]model.Lokasi, error)
	Count() (int64, error)
}

type lokasiRepository struct {
	db *gorm.DB
}

func NewLokasiRepository(db *gorm.DB) LokasiRepository {
	return &lokasiRepository{db}
}

func (r *lokasiRepository) Create(lokasi *model.Lokasi) error {
	return r.db.Create(lokasi).Error
}

func (r *lokasiRepository) FindByID(id uint) (*model.Lokasi, error) {
	var lokasi model.Lokasi
	err := r.db.First(&lokasi, id).Error
	if err != nil {
		return nil, err
	}
	return &lokasi, nil
}

func (r *lokasiRepository) GetAll() ([]model.Lokasi, error) {
	var list []model.Lokasi
	err := r.db.Order("nama_lokasi asc").Find(&list).Error
	return list, err
}

func (r *lokasiRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Lokasi{}).Count(&count).Error
	return count, err
}

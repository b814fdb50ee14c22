package repository

import (
	"amt-blocking-backend/internal/model"

	"gorm.io/gorm"
)

type AMTRepository interface {
	Create(amt *model.AMT) error
	FindByID(id uint) (*model.AMT, error)
	FindByNamaAndRole(nama string, role string) (*model.AMT, error)
	GetAll(search string) ([]model.AMT, error)
	Count() (int64, error)
}

type amtRepository struct {
	db *gorm.DB
}

func NewAMTRepository(db *gorm.DB) AMTRepository {
	return &amtRepository{db}
}

func (r *amtRepository) Create(amt *model.AMT) error {
	return r.db.Create(amt).Error
}

func (r *amtRepository) FindByID(id uint) (*model.AMT, error) {
	var amt model.AMT
	err := r.db.Preload("Lokasi").First(&amt, id).Error
	if err != nil {
		return nil, err
	}
	return &amt, nil
}

func (r *amtRepository) FindByNamaAndRole(nama string, role string) (*model.AMT, error) {
	var amt model.AMT
	// Pencocokan identitas soft: nama (sudah dinormalisasi) + role
	err := r.db.Where("nama = ? AND role = ?", nama, role).First(&amt).Error
	if err != nil {
		return nil, err
	}
	return &amt, nil
}

func (r *amtRepository) GetAll(search string) ([]model.AMT, error) {
	var amts []model.AMT
	query := r.db.Preload("Lokasi")

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("nama LIKE ? OR nomor_pekerja LIKE ?", searchPattern, searchPattern)
	}

	err := query.Find(&amts).Error
	return amts, err
}

func (r *amtRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.AMT{}).Count(&count).Error
	return count, err
}

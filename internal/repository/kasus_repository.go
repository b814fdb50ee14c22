package repository

import (
	"strings"

	"amt-blocking-backend/internal/model"

	"gorm.io/gorm"
)

// KasusFilter dipakai bersama oleh list kasus, unblock list, dan export CSV
// agar logika filternya identik di semua tempat.
type KasusFilter struct {
	Lokasi string // Exact match
	Nama   string // Partial match, case insensitive
	Role   string // Exact match
	Status string // Exact match (BLOCKED / UNBLOCKED)
}

type KasusRepository interface {
	Create(kasus *model.Kasus) error
	FindByID(id uint) (*model.Kasus, error)
	Update(kasus *model.Kasus) error
	GetAll(filter KasusFilter) ([]model.Kasus, error)
	GetUnblockedByAMTID(amtID uint) ([]model.Kasus, error)
	CountByStatus(status string) (int64, error)
	CountByLevel(level model.PunishmentLevel) (int64, error)
}

type kasusRepository struct {
	db *gorm.DB
}

func NewKasusRepository(db *gorm.DB) KasusRepository {
	return &kasusRepository{db}
}

func (r *kasusRepository) Create(kasus *model.Kasus) error {
	return r.db.Create(kasus).Error
}

func (r *kasusRepository) FindByID(id uint) (*model.Kasus, error) {
	var kasus model.Kasus
	err := r.db.First(&kasus, id).Error
	if err != nil {
		return nil, err
	}
	return &kasus, nil
}

func (r *kasusRepository) Update(kasus *model.Kasus) error {
	return r.db.Save(kasus).Error
}

func (r *kasusRepository) GetAll(filter KasusFilter) ([]model.Kasus, error) {
	var list []model.Kasus
	query := r.db.Model(&model.Kasus{})

	if filter.Lokasi != "" {
		query = query.Where("lokasi_amt = ?", filter.Lokasi)
	}
	if filter.Nama != "" {
		query = query.Where("LOWER(nama_amt) LIKE ?", "%"+strings.ToLower(filter.Nama)+"%")
	}
	if filter.Role != "" {
		query = query.Where("role_amt = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	err := query.Order("tanggal_blokir desc").Find(&list).Error
	return list, err
}

func (r *kasusRepository) GetUnblockedByAMTID(amtID uint) ([]model.Kasus, error) {
	var list []model.Kasus
	err := r.db.Where("amt_id = ? AND status = ?", amtID, model.StatusUnblocked).
		Order("id asc").Find(&list).Error
	return list, err
}

func (r *kasusRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Kasus{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *kasusRepository) CountByLevel(level model.PunishmentLevel) (int64, error) {
	var count int64
	err := r.db.Model(&model.Kasus{}).Where("punishment_level = ?", level).Count(&count).Error
	return count, err
}

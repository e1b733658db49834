package repository

import (
	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"gorm.io/gorm"
)

type ConcernRepository struct {
	db *gorm.DB
}

func NewConcernRepository(db *gorm.DB) *ConcernRepository {
	return &ConcernRepository{db: db}
}

func (r *ConcernRepository) FindByID(id uint) (*entity.Concern, error) {
	var concern entity.Concern
	if err := r.db.Preload("Media").First(&concern, id).Error; err != nil {
		return nil, err
	}
	return &concern, nil
}

func (r *ConcernRepository) FindByIDAndCitizen(id, citizenID uint) (*entity.Concern, error) {
	var concern entity.Concern
	err := r.db.Preload("Media").
		Where("id = ? AND citizen_id = ?", id, citizenID).
		First(&concern).Error
	if err != nil {
		return nil, err
	}
	return &concern, nil
}

func (r *ConcernRepository) FindAllByCitizen(citizenID uint, out *[]entity.Concern) error {
	return r.db.Preload("Media").
		Where("citizen_id = ?", citizenID).
		Order("created_at DESC").
		Find(out).Error
}

func (r *ConcernRepository) FindAll(out *[]entity.Concern) error {
	return r.db.Preload("Media").Order("created_at DESC").Find(out).Error
}

func (r *ConcernRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Concern{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

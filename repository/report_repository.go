package repository

import (
	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(report *entity.Report) error {
	return r.db.Create(report).Error
}

func (r *ReportRepository) FindByID(id uint) (*entity.Report, error) {
	var report entity.Report
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) FindAll(out *[]entity.Report) error {
	return r.db.Order("created_at DESC").Find(out).Error
}

func (r *ReportRepository) FindAllByStatus(status string, out *[]entity.Report) error {
	return r.db.Where("status = ?", status).Order("created_at DESC").Find(out).Error
}

package services

import (
	"errors"
	"strings"

	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"github.com/Althirdy/urbanwatch-api-sub000/repository"
	"gorm.io/gorm"
)

var (
	ErrAlreadyAcknowledged = errors.New("report already acknowledged")
	ErrInvalidReportType   = errors.New("invalid report type")
)

var validReportTypes = map[string]bool{
	entity.ReportTypeFire:     true,
	entity.ReportTypeFlood:    true,
	entity.ReportTypeCrime:    true,
	entity.ReportTypeAccident: true,
	entity.ReportTypeOthers:   true,
}

type ReportService struct {
	DB   *gorm.DB
	Repo *repository.ReportRepository
}

func NewReportService(db *gorm.DB, repo *repository.ReportRepository) *ReportService {
	return &ReportService{DB: db, Repo: repo}
}

type CreateReportReq struct {
	ReportType  string
	Transcript  string
	Description string
	Lattitude   *float64
	Longtitude  *float64
}

func (s *ReportService) Create(userID uint, req *CreateReportReq) (*entity.Report, error) {
	if !validReportTypes[strings.TrimSpace(req.ReportType)] {
		return nil, ErrInvalidReportType
	}
	if (req.Lattitude == nil) != (req.Longtitude == nil) {
		return nil, ErrCoordinatePair
	}

	report := &entity.Report{
		UserID:      userID,
		ReportType:  strings.TrimSpace(req.ReportType),
		Transcript:  req.Transcript,
		Description: req.Description,
		Lattitude:   req.Lattitude,
		Longtitude:  req.Longtitude,
		Status:      entity.ReportStatusPending,
	}
	if err := s.Repo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

// Acknowledge flips the report to acknowledged exactly once. A second
// call returns ErrAlreadyAcknowledged and leaves the record untouched.
func (s *ReportService) Acknowledge(reportID, actorID uint) (*entity.Report, error) {
	report, err := s.Repo.FindByID(reportID)
	if err != nil {
		return nil, err
	}
	if report.IsAcknowledge {
		return nil, ErrAlreadyAcknowledged
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Report{}).
			Where("id = ? AND is_acknowledge = ?", reportID, false).
			Updates(map[string]any{
				"is_acknowledge": true,
				"acknowledge_by": actorID,
				"status":         entity.ReportStatusAcknowledged,
			})
		if res.Error != nil {
			return res.Error
		}
		// Lost the race against another acknowledger
		if res.RowsAffected == 0 {
			return ErrAlreadyAcknowledged
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByID(reportID)
}

// Archive marks the report Archived and then soft-deletes it.
func (s *ReportService) Archive(reportID uint) error {
	report, err := s.Repo.FindByID(reportID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(report).Update("status", entity.ReportStatusArchived).Error; err != nil {
			return err
		}
		return tx.Delete(report).Error
	})
}

func (s *ReportService) FindAll(out *[]entity.Report) error {
	return s.Repo.FindAll(out)
}

func (s *ReportService) FindAllByStatus(status string, out *[]entity.Report) error {
	return s.Repo.FindAllByStatus(status, out)
}

func (s *ReportService) FindByID(id uint) (*entity.Report, error) {
	return s.Repo.FindByID(id)
}

package services

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"github.com/Althirdy/urbanwatch-api-sub000/repository"
	"gorm.io/gorm"
)

var (
	ErrCitizenNotFound      = errors.New("citizen not found")
	ErrCoordinatePair       = errors.New("longitude and latitude must be provided together")
	ErrSubmissionFailed     = errors.New("concern submission failed")
	ErrMissingConcernFields = errors.New("title, description and category are required")
)

// ConcernNotifier receives committed concerns, e.g. the operator live feed.
type ConcernNotifier interface {
	NotifyConcernCreated(concern *entity.Concern)
}

type ConcernService struct {
	DB       *gorm.DB
	Repo     *repository.ConcernRepository
	UserRepo *repository.UserRepository
	Uploads  *UploadService

	// Feed is optional; nil means no broadcast.
	Feed ConcernNotifier

	// UploadFolder is the provider-side folder hint for attachments.
	UploadFolder string
}

func NewConcernService(
	db *gorm.DB,
	repo *repository.ConcernRepository,
	userRepo *repository.UserRepository,
	uploads *UploadService,
) *ConcernService {
	return &ConcernService{
		DB:           db,
		Repo:         repo,
		UserRepo:     userRepo,
		Uploads:      uploads,
		UploadFolder: "concerns",
	}
}

type SubmitConcernReq struct {
	CitizenID      uint
	Title          string
	Description    string
	Category       string
	TranscriptText string
	Longitude      *float64
	Latitude       *float64
	Files          []*multipart.FileHeader
}

type SubmitConcernRes struct {
	Concern *entity.Concern
	// Images holds the secure URLs of successful uploads only; failed
	// uploads are logged server-side and omitted.
	Images []string
}

// Submit creates the concern and its media atomically. Per-file upload
// failures do not abort the submission; any persistence error rolls the
// whole transaction back, including the concern row.
func (s *ConcernService) Submit(ctx context.Context, req *SubmitConcernReq) (*SubmitConcernRes, error) {
	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.Category) == "" {
		return nil, ErrMissingConcernFields
	}
	if (req.Longitude == nil) != (req.Latitude == nil) {
		return nil, ErrCoordinatePair
	}

	exists, err := s.UserRepo.Exists(req.CitizenID)
	if err != nil {
		log.Printf("concern submit: citizen lookup failed: %v", err)
		return nil, ErrSubmissionFailed
	}
	if !exists {
		return nil, ErrCitizenNotFound
	}

	var concern entity.Concern
	images := []string{}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		concern = entity.Concern{
			CitizenID:      req.CitizenID,
			Type:           entity.ConcernTypeManual,
			Title:          strings.TrimSpace(req.Title),
			Description:    strings.TrimSpace(req.Description),
			Category:       strings.TrimSpace(req.Category),
			Status:         entity.ConcernStatusPending,
			TranscriptText: req.TranscriptText,
			Longitude:      req.Longitude,
			Latitude:       req.Latitude,
		}
		if err := tx.Create(&concern).Error; err != nil {
			return err
		}

		if len(req.Files) == 0 {
			return nil
		}

		batch := s.Uploads.UploadBatch(ctx, req.Files, s.UploadFolder)
		for _, up := range batch.Successful {
			media := entity.ConcernMedia{
				ConcernID:    concern.ID,
				MediaType:    entity.MediaTypeImage,
				OriginalPath: up.SecureURL,
				PublicID:     up.PublicID,
				FileName:     up.FileName,
				FileSize:     up.FileSize,
				MimeType:     up.MimeType,
			}
			if err := tx.Create(&media).Error; err != nil {
				return err
			}
			images = append(images, up.SecureURL)
		}
		return nil
	})
	if err != nil {
		log.Printf("concern submit: transaction failed: %v", err)
		return nil, ErrSubmissionFailed
	}

	if s.Feed != nil {
		s.Feed.NotifyConcernCreated(&concern)
	}
	return &SubmitConcernRes{Concern: &concern, Images: images}, nil
}

func (s *ConcernService) FindForCitizen(citizenID uint, out *[]entity.Concern) error {
	return s.Repo.FindAllByCitizen(citizenID, out)
}

func (s *ConcernService) FindByIDForCitizen(id, citizenID uint) (*entity.Concern, error) {
	return s.Repo.FindByIDAndCitizen(id, citizenID)
}

func (s *ConcernService) FindAll(out *[]entity.Concern) error {
	return s.Repo.FindAll(out)
}

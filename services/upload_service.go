package services

import (
	"context"
	"log"
	"mime/multipart"

	"github.com/Althirdy/urbanwatch-api-sub000/pkg/cloudinary"
)

// FileUploader is satisfied by *cloudinary.Client; tests substitute stubs.
type FileUploader interface {
	UploadFile(ctx context.Context, fh *multipart.FileHeader, folder string) (*cloudinary.UploadResult, error)
}

type UploadedFile struct {
	Index     int    `json:"index"`
	FileName  string `json:"fileName"`
	FileSize  int64  `json:"fileSize"`
	MimeType  string `json:"mimeType"`
	SecureURL string `json:"secureUrl"`
	PublicID  string `json:"publicId"`
}

type FailedFile struct {
	Index    int    `json:"index"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
	Reason   string `json:"reason"`
}

// BatchResult partitions a batch: every input index lands in exactly one
// bucket, in original order.
type BatchResult struct {
	Successful []UploadedFile `json:"successful"`
	Failed     []FailedFile   `json:"failed"`
}

type UploadService struct {
	uploader FileUploader
}

func NewUploadService(uploader FileUploader) *UploadService {
	return &UploadService{uploader: uploader}
}

// UploadBatch drives per-file uploads sequentially and never errors: a
// file either ends up in Successful or in Failed. One file failing does
// not stop the rest of the batch.
func (s *UploadService) UploadBatch(ctx context.Context, files []*multipart.FileHeader, folder string) BatchResult {
	result := BatchResult{
		Successful: []UploadedFile{},
		Failed:     []FailedFile{},
	}

	for i, fh := range files {
		if fh == nil || fh.Filename == "" {
			result.Failed = append(result.Failed, FailedFile{
				Index:  i,
				Reason: "invalid file type",
			})
			continue
		}

		mimeType := cloudinary.DetectMimeType(fh.Header.Get("Content-Type"), fh.Filename)

		up, err := s.uploader.UploadFile(ctx, fh, folder)
		if err != nil {
			result.Failed = append(result.Failed, FailedFile{
				Index:    i,
				FileName: fh.Filename,
				FileSize: fh.Size,
				MimeType: mimeType,
				Reason:   "upload failed",
			})
			continue
		}

		result.Successful = append(result.Successful, UploadedFile{
			Index:     i,
			FileName:  fh.Filename,
			FileSize:  fh.Size,
			MimeType:  mimeType,
			SecureURL: up.SecureURL,
			PublicID:  up.PublicID,
		})
	}

	log.Printf("upload batch: total=%d successful=%d failed=%d",
		len(files), len(result.Successful), len(result.Failed))
	return result
}

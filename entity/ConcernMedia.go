package entity

import (
	"gorm.io/gorm"
)

const MediaTypeImage = "image"

// ConcernMedia is one successfully uploaded attachment. Failed uploads
// never produce a row.
type ConcernMedia struct {
	gorm.Model
	ConcernID uint    `gorm:"not null;index" json:"concernId"`
	Concern   Concern `gorm:"foreignKey:ConcernID" json:"-"`

	MediaType    string `gorm:"not null;default:image" json:"mediaType"`
	OriginalPath string `gorm:"not null" json:"originalPath"`
	BlurredPath  string `json:"blurredPath"` // reserved, not populated yet
	PublicID     string `gorm:"not null" json:"publicId"`
	FileName     string `json:"fileName"`
	FileSize     int64  `json:"fileSize"`
	MimeType     string `json:"mimeType"`
}

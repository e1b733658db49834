package entity

import (
	"gorm.io/gorm"
)

const (
	ConcernTypeManual = "manual"

	ConcernStatusPending   = "pending"
	ConcernStatusInReview  = "in_review"
	ConcernStatusResolved  = "resolved"
	ConcernStatusDismissed = "dismissed"
)

// Concern is a citizen-submitted incident, the parent of any uploaded media.
type Concern struct {
	gorm.Model
	CitizenID uint `gorm:"not null;index" json:"citizenId"`
	Citizen   User `gorm:"foreignKey:CitizenID" json:"-"`

	Type           string `gorm:"not null;default:manual" json:"type"`
	Title          string `gorm:"not null" json:"title"`
	Description    string `gorm:"not null" json:"description"`
	Category       string `gorm:"not null" json:"category"`
	Status         string `gorm:"not null;default:pending" json:"status"`
	TranscriptText string `json:"transcriptText"`

	// Both set or both nil
	Longitude *float64 `gorm:"type:decimal(10,7)" json:"longitude"`
	Latitude  *float64 `gorm:"type:decimal(10,7)" json:"latitude"`

	Media []ConcernMedia `gorm:"foreignKey:ConcernID" json:"-"`
}

package entity

import (
	"gorm.io/gorm"
)

const (
	ReportTypeFire     = "Fire"
	ReportTypeFlood    = "Flood"
	ReportTypeCrime    = "Crime"
	ReportTypeAccident = "Accident"
	ReportTypeOthers   = "Others"

	ReportStatusPending      = "Pending"
	ReportStatusAcknowledged = "Acknowledged"
	ReportStatusResolved     = "Resolved"
	ReportStatusArchived     = "Archived"
)

type Report struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	ReportType  string `gorm:"not null" json:"reportType"`
	Transcript  string `json:"transcript"`
	Description string `json:"description"`

	// Legacy column names kept as-is for storage/wire compatibility
	Lattitude  *float64 `gorm:"column:lattitude;type:decimal(10,7)" json:"lattitude"`
	Longtitude *float64 `gorm:"column:longtitude;type:decimal(10,7)" json:"longtitude"`

	IsAcknowledge bool   `gorm:"not null;default:false" json:"isAcknowledge"`
	AcknowledgeBy *uint  `json:"acknowledgeBy"`
	Acknowledger  *User  `gorm:"foreignKey:AcknowledgeBy" json:"-"`
	Status        string `gorm:"not null;default:Pending" json:"status"`
}

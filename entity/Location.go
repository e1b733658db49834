package entity

import (
	"gorm.io/gorm"
)

type Location struct {
	gorm.Model
	Name      string   `gorm:"not null" json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `gorm:"type:decimal(10,7)" json:"latitude"`
	Longitude *float64 `gorm:"type:decimal(10,7)" json:"longitude"`

	Devices []Device `json:"-"`
}

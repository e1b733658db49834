package entity

import (
	"gorm.io/gorm"
)

// Contact is an emergency/department contact shown in the admin panel.
type Contact struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Designation string `json:"designation"`
	PhoneNumber string `gorm:"not null" json:"phoneNumber"`
	Email       string `json:"email"`
	Category    string `json:"category"` // e.g. "Police", "Fire", "Medical"
}

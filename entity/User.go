package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCitizen  = "citizen"
	RoleOfficial = "official"
	RoleOperator = "operator"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `gorm:"not null;default:citizen" json:"role"`

	// Relations — preload only when needed
	Concerns []Concern `gorm:"foreignKey:CitizenID" json:"-"`
	Reports  []Report  `gorm:"foreignKey:UserID" json:"-"`
}

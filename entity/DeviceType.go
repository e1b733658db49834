package entity

import (
	"gorm.io/gorm"
)

type DeviceType struct {
	gorm.Model
	TypeName string `gorm:"uniqueIndex;not null" json:"typeName"`

	Devices []Device `json:"-"`
}

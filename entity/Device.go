package entity

import (
	"gorm.io/gorm"
)

const (
	DeviceStatusOnline      = "online"
	DeviceStatusOffline     = "offline"
	DeviceStatusMaintenance = "maintenance"
)

// Device is a CCTV camera or IoT unit installed at a Location.
type Device struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	SerialNumber string `gorm:"uniqueIndex;not null" json:"serialNumber"`
	Status       string `gorm:"not null;default:offline" json:"status"`
	StreamURL    string `json:"streamUrl"`

	DeviceTypeID uint       `gorm:"not null" json:"deviceTypeId"`
	DeviceType   DeviceType `json:"deviceType"`

	LocationID uint     `gorm:"not null" json:"locationId"`
	Location   Location `json:"location"`
}

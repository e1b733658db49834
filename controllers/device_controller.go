package controllers

import (
	"strconv"

	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"github.com/Althirdy/urbanwatch-api-sub000/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DeviceController struct {
	DB *gorm.DB
}

func NewDeviceController(db *gorm.DB) *DeviceController {
	return &DeviceController{DB: db}
}

type DeviceRequest struct {
	Name         string `json:"name" binding:"required"`
	SerialNumber string `json:"serialNumber" binding:"required"`
	Status       string `json:"status"`
	StreamURL    string `json:"streamUrl"`
	DeviceTypeID uint   `json:"deviceTypeId" binding:"required"`
	LocationID   uint   `json:"locationId" binding:"required"`
}

// GET /admin/devices?locationId=
func (dc *DeviceController) List(c *gin.Context) {
	q := dc.DB.Preload("DeviceType").Preload("Location")
	if locID := c.Query("locationId"); locID != "" {
		q = q.Where("location_id = ?", locID)
	}

	var devices []entity.Device
	if err := q.Find(&devices).Error; err != nil {
		resp.ServerError(c, "cannot fetch devices")
		return
	}
	resp.OK(c, "devices fetched", gin.H{"devices": devices})
}

// POST /admin/devices
func (dc *DeviceController) Create(c *gin.Context) {
	var req DeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	status := req.Status
	if status == "" {
		status = entity.DeviceStatusOffline
	}

	device := entity.Device{
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		Status:       status,
		StreamURL:    req.StreamURL,
		DeviceTypeID: req.DeviceTypeID,
		LocationID:   req.LocationID,
	}
	if err := dc.DB.Create(&device).Error; err != nil {
		resp.ServerError(c, "cannot save device")
		return
	}
	resp.Created(c, "device created", gin.H{"device": device})
}

// PATCH /admin/devices/:id
func (dc *DeviceController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid device id")
		return
	}

	var device entity.Device
	if err := dc.DB.First(&device, id).Error; err != nil {
		resp.NotFound(c, "device not found")
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// Only whitelisted columns are updatable
	allowed := map[string]bool{"name": true, "status": true, "streamUrl": true, "locationId": true}
	cols := map[string]any{}
	for k, v := range updates {
		if allowed[k] {
			cols[colName(k)] = v
		}
	}
	if len(cols) == 0 {
		resp.BadRequest(c, "no updatable fields")
		return
	}

	if err := dc.DB.Model(&device).Updates(cols).Error; err != nil {
		resp.ServerError(c, "cannot update device")
		return
	}
	resp.OK(c, "device updated", gin.H{"device": device})
}

func colName(field string) string {
	switch field {
	case "streamUrl":
		return "stream_url"
	case "locationId":
		return "location_id"
	default:
		return field
	}
}

// DELETE /admin/devices/:id
func (dc *DeviceController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid device id")
		return
	}

	res := dc.DB.Delete(&entity.Device{}, id)
	if res.Error != nil {
		resp.ServerError(c, "cannot delete device")
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "device not found")
		return
	}
	resp.OK(c, "device deleted", nil)
}

// GET /admin/device-types
func (dc *DeviceController) ListTypes(c *gin.Context) {
	var types []entity.DeviceType
	if err := dc.DB.Find(&types).Error; err != nil {
		resp.ServerError(c, "cannot fetch device types")
		return
	}
	resp.OK(c, "device types fetched", gin.H{"deviceTypes": types})
}

package controllers

import (
	"strconv"

	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"github.com/Althirdy/urbanwatch-api-sub000/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

type LocationRequest struct {
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// GET /admin/locations
func (lc *LocationController) List(c *gin.Context) {
	var locations []entity.Location
	if err := lc.DB.Find(&locations).Error; err != nil {
		resp.ServerError(c, "cannot fetch locations")
		return
	}
	resp.OK(c, "locations fetched", gin.H{"locations": locations})
}

// POST /admin/locations
func (lc *LocationController) Create(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		resp.BadRequest(c, "latitude and longitude must be provided together")
		return
	}

	location := entity.Location{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := lc.DB.Create(&location).Error; err != nil {
		resp.ServerError(c, "cannot save location")
		return
	}
	resp.Created(c, "location created", gin.H{"location": location})
}

// PATCH /admin/locations/:id
func (lc *LocationController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid location id")
		return
	}

	var location entity.Location
	if err := lc.DB.First(&location, id).Error; err != nil {
		resp.NotFound(c, "location not found")
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		resp.BadRequest(c, "latitude and longitude must be provided together")
		return
	}

	location.Name = req.Name
	location.Address = req.Address
	location.Latitude = req.Latitude
	location.Longitude = req.Longitude
	if err := lc.DB.Save(&location).Error; err != nil {
		resp.ServerError(c, "cannot update location")
		return
	}
	resp.OK(c, "location updated", gin.H{"location": location})
}

// DELETE /admin/locations/:id
func (lc *LocationController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid location id")
		return
	}

	// Refuse while devices are still installed there
	var devices int64
	lc.DB.Model(&entity.Device{}).Where("location_id = ?", id).Count(&devices)
	if devices > 0 {
		resp.Conflict(c, "location still has devices assigned")
		return
	}

	res := lc.DB.Delete(&entity.Location{}, id)
	if res.Error != nil {
		resp.ServerError(c, "cannot delete location")
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "location not found")
		return
	}
	resp.OK(c, "location deleted", nil)
}

package controllers

import (
	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"github.com/Althirdy/urbanwatch-api-sub000/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GET /admin/dashboard — headline counts for the panel
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers int64
	var pendingConcerns int64
	var unackReports int64
	var onlineDevices int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		resp.ServerError(c, "count users failed")
		return
	}
	if err := db.Model(&entity.Concern{}).
		Where("status = ?", entity.ConcernStatusPending).
		Count(&pendingConcerns).Error; err != nil {
		resp.ServerError(c, "count concerns failed")
		return
	}
	if err := db.Model(&entity.Report{}).
		Where("is_acknowledge = ?", false).
		Count(&unackReports).Error; err != nil {
		resp.ServerError(c, "count reports failed")
		return
	}
	if err := db.Model(&entity.Device{}).
		Where("status = ?", entity.DeviceStatusOnline).
		Count(&onlineDevices).Error; err != nil {
		resp.ServerError(c, "count devices failed")
		return
	}

	resp.OK(c, "dashboard fetched", gin.H{
		"totalUsers":            totalUsers,
		"pendingConcerns":       pendingConcerns,
		"unacknowledgedReports": unackReports,
		"onlineDevices":         onlineDevices,
	})
}

// GET /admin/users?role=
func (ac *AdminController) Users(c *gin.Context) {
	q := ac.DB.Order("created_at DESC")
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var users []entity.User
	if err := q.Find(&users).Error; err != nil {
		resp.ServerError(c, "cannot fetch users")
		return
	}
	resp.OK(c, "users fetched", gin.H{"users": users})
}

package controllers

import (
	"strconv"

	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"github.com/Althirdy/urbanwatch-api-sub000/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

type ContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Category    string `json:"category"`
}

// GET /admin/contacts?category=
func (cc *ContactController) List(c *gin.Context) {
	q := cc.DB.Order("name ASC")
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}

	var contacts []entity.Contact
	if err := q.Find(&contacts).Error; err != nil {
		resp.ServerError(c, "cannot fetch contacts")
		return
	}
	resp.OK(c, "contacts fetched", gin.H{"contacts": contacts})
}

// POST /admin/contacts
func (cc *ContactController) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	contact := entity.Contact{
		Name:        req.Name,
		Designation: req.Designation,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Category:    req.Category,
	}
	if err := cc.DB.Create(&contact).Error; err != nil {
		resp.ServerError(c, "cannot save contact")
		return
	}
	resp.Created(c, "contact created", gin.H{"contact": contact})
}

// PUT /admin/contacts/:id
func (cc *ContactController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid contact id")
		return
	}

	var contact entity.Contact
	if err := cc.DB.First(&contact, id).Error; err != nil {
		resp.NotFound(c, "contact not found")
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	contact.Name = req.Name
	contact.Designation = req.Designation
	contact.PhoneNumber = req.PhoneNumber
	contact.Email = req.Email
	contact.Category = req.Category
	if err := cc.DB.Save(&contact).Error; err != nil {
		resp.ServerError(c, "cannot update contact")
		return
	}
	resp.OK(c, "contact updated", gin.H{"contact": contact})
}

// DELETE /admin/contacts/:id
func (cc *ContactController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid contact id")
		return
	}

	res := cc.DB.Delete(&entity.Contact{}, id)
	if res.Error != nil {
		resp.ServerError(c, "cannot delete contact")
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "contact not found")
		return
	}
	resp.OK(c, "contact deleted", nil)
}

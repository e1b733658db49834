package controllers

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"github.com/Althirdy/urbanwatch-api-sub000/pkg/resp"
	"github.com/Althirdy/urbanwatch-api-sub000/services"
	"github.com/Althirdy/urbanwatch-api-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ConcernController struct {
	service *services.ConcernService
}

func NewConcernController(service *services.ConcernService) *ConcernController {
	return &ConcernController{service: service}
}

type SubmitConcernRequest struct {
	Title          string   `form:"title" json:"title" binding:"required"`
	Description    string   `form:"description" json:"description" binding:"required"`
	Category       string   `form:"category" json:"category" binding:"required"`
	TranscriptText string   `form:"transcript_text" json:"transcript_text"`
	Longitude      *float64 `form:"longitude" json:"longitude"`
	Latitude       *float64 `form:"latitude" json:"latitude"`
}

// POST /citizen/manual-concern — JSON or multipart/form-data. The owning
// citizen is always the authenticated caller, never a form field.
func (cc *ConcernController) Submit(c *gin.Context) {
	var req SubmitConcernRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := cc.service.Submit(c.Request.Context(), &services.SubmitConcernReq{
		CitizenID:      utils.CurrentUserID(c),
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		TranscriptText: req.TranscriptText,
		Longitude:      req.Longitude,
		Latitude:       req.Latitude,
		Files:          attachedFiles(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingConcernFields),
			errors.Is(err, services.ErrCoordinatePair),
			errors.Is(err, services.ErrCitizenNotFound):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, "concern submission failed")
		}
		return
	}

	resp.Created(c, "concern submitted", gin.H{
		"concern": gin.H{
			"id":          res.Concern.ID,
			"title":       res.Concern.Title,
			"description": res.Concern.Description,
			"category":    res.Concern.Category,
			"status":      res.Concern.Status,
			"createdAt":   res.Concern.CreatedAt,
		},
		"images": res.Images,
	})
}

// attachedFiles pulls the optional file parts; both "files" and "files[]"
// keys are accepted for mobile-client compatibility.
func attachedFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	if files := form.File["files"]; len(files) > 0 {
		return files
	}
	return form.File["files[]"]
}

// GET /citizen/concerns
func (cc *ConcernController) ListMine(c *gin.Context) {
	var concerns []entity.Concern
	if err := cc.service.FindForCitizen(utils.CurrentUserID(c), &concerns); err != nil {
		resp.ServerError(c, "cannot fetch concerns")
		return
	}
	resp.OK(c, "concerns fetched", gin.H{"concerns": concerns})
}

// GET /citizen/concerns/:id
func (cc *ConcernController) DetailMine(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid concern id")
		return
	}

	concern, err := cc.service.FindByIDForCitizen(uint(id), utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "concern not found")
		return
	}
	resp.OK(c, "concern fetched", gin.H{"concern": concern})
}

// GET /admin/concerns
func (cc *ConcernController) ListAll(c *gin.Context) {
	var concerns []entity.Concern
	if err := cc.service.FindAll(&concerns); err != nil {
		resp.ServerError(c, "cannot fetch concerns")
		return
	}
	resp.OK(c, "concerns fetched", gin.H{"concerns": concerns})
}

package controllers

import (
	"errors"
	"strconv"

	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"github.com/Althirdy/urbanwatch-api-sub000/pkg/resp"
	"github.com/Althirdy/urbanwatch-api-sub000/services"
	"github.com/Althirdy/urbanwatch-api-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

type CreateReportRequest struct {
	ReportType  string   `json:"reportType" binding:"required"`
	Transcript  string   `json:"transcript"`
	Description string   `json:"description"`
	Lattitude   *float64 `json:"lattitude"`
	Longtitude  *float64 `json:"longtitude"`
}

// POST /admin/reports
func (rc *ReportController) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	report, err := rc.service.Create(utils.CurrentUserID(c), &services.CreateReportReq{
		ReportType:  req.ReportType,
		Transcript:  req.Transcript,
		Description: req.Description,
		Lattitude:   req.Lattitude,
		Longtitude:  req.Longtitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReportType),
			errors.Is(err, services.ErrCoordinatePair):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, "cannot save report")
		}
		return
	}
	resp.Created(c, "report created", gin.H{"report": report})
}

// GET /admin/reports?status=Pending
func (rc *ReportController) List(c *gin.Context) {
	var reports []entity.Report
	var err error
	if status := c.Query("status"); status != "" {
		err = rc.service.FindAllByStatus(status, &reports)
	} else {
		err = rc.service.FindAll(&reports)
	}
	if err != nil {
		resp.ServerError(c, "cannot fetch reports")
		return
	}
	resp.OK(c, "reports fetched", gin.H{"reports": reports})
}

// PATCH /report/:id/acknowledge
func (rc *ReportController) Acknowledge(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid report id")
		return
	}

	report, err := rc.service.Acknowledge(uint(id), utils.CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyAcknowledged):
			resp.Conflict(c, "report already acknowledged")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "report not found")
		default:
			resp.ServerError(c, "cannot acknowledge report")
		}
		return
	}
	resp.OK(c, "report acknowledged", gin.H{"report": report})
}

// PATCH /admin/reports/:id/archive
func (rc *ReportController) Archive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid report id")
		return
	}

	if err := rc.service.Archive(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "report not found")
			return
		}
		resp.ServerError(c, "cannot archive report")
		return
	}
	resp.OK(c, "report archived", nil)
}

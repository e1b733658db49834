package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"github.com/Althirdy/urbanwatch-api-sub000/middlewares"
	"github.com/Althirdy/urbanwatch-api-sub000/repository"
	"github.com/Althirdy/urbanwatch-api-sub000/services"
	"github.com/Althirdy/urbanwatch-api-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupReportEnv(t *testing.T) (*gin.Engine, *gorm.DB, *services.ReportService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Report{}))

	svc := services.NewReportService(db, repository.NewReportRepository(db))
	ctrl := NewReportController(svc)

	r := gin.New()
	r.PATCH("/report/:id/acknowledge",
		middlewares.AuthMiddleware(testSecret, entity.RoleOperator, entity.RoleOfficial),
		ctrl.Acknowledge)
	return r, db, svc
}

func operatorToken(t *testing.T, db *gorm.DB, email string) (uint, string) {
	t.Helper()
	user := &entity.User{Email: email, Password: "x", Role: entity.RoleOperator}
	require.NoError(t, db.Create(user).Error)
	token, err := utils.GenerateToken(user.ID, user.Role, testSecret, time.Hour)
	require.NoError(t, err)
	return user.ID, token
}

func TestAcknowledgeEndpoint_OnceThenConflict(t *testing.T) {
	router, db, svc := setupReportEnv(t)

	citizen := &entity.User{Email: "c@example.com", Password: "x", Role: entity.RoleCitizen}
	require.NoError(t, db.Create(citizen).Error)
	report, err := svc.Create(citizen.ID, &services.CreateReportReq{
		ReportType:  entity.ReportTypeFire,
		Description: "Smoke near the market",
	})
	require.NoError(t, err)

	firstID, firstToken := operatorToken(t, db, "first@example.com")
	_, secondToken := operatorToken(t, db, "second@example.com")

	ack := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/report/1/acknowledge", bytes.NewBufferString(""))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := ack(firstToken)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ack(secondToken)
	assert.Equal(t, http.StatusConflict, rec.Code)

	saved, err := svc.FindByID(report.ID)
	require.NoError(t, err)
	assert.True(t, saved.IsAcknowledge)
	require.NotNil(t, saved.AcknowledgeBy)
	assert.Equal(t, firstID, *saved.AcknowledgeBy)
	assert.Equal(t, entity.ReportStatusAcknowledged, saved.Status)
}

func TestAcknowledgeEndpoint_CitizenForbidden(t *testing.T) {
	router, db, _ := setupReportEnv(t)

	citizen := &entity.User{Email: "c@example.com", Password: "x", Role: entity.RoleCitizen}
	require.NoError(t, db.Create(citizen).Error)
	token, err := utils.GenerateToken(citizen.ID, citizen.Role, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/report/1/acknowledge", bytes.NewBufferString(""))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAcknowledgeEndpoint_UnknownReport(t *testing.T) {
	router, db, _ := setupReportEnv(t)
	_, token := operatorToken(t, db, "op@example.com")

	req := httptest.NewRequest(http.MethodPatch, "/report/99/acknowledge", bytes.NewBufferString(""))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

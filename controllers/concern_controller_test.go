package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"github.com/Althirdy/urbanwatch-api-sub000/middlewares"
	"github.com/Althirdy/urbanwatch-api-sub000/pkg/cloudinary"
	"github.com/Althirdy/urbanwatch-api-sub000/repository"
	"github.com/Althirdy/urbanwatch-api-sub000/services"
	"github.com/Althirdy/urbanwatch-api-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	citizen *entity.User
	token   string
	calls   *int32
}

func setupConcernEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Concern{}, &entity.ConcernMedia{}))

	citizen := &entity.User{Email: "jane@example.com", Password: "x", Role: entity.RoleCitizen}
	require.NoError(t, db.Create(citizen).Error)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		fmt.Fprintf(w, `{"secure_url":"https://res.cloudinary.com/demo/up_%d.jpg","public_id":"up_%d"}`, n, n)
	}))
	t.Cleanup(srv.Close)

	storage, err := cloudinary.New(cloudinary.Config{
		CloudName: "demo", UploadPreset: "unsigned", BaseURL: srv.URL,
	})
	require.NoError(t, err)

	svc := services.NewConcernService(
		db,
		repository.NewConcernRepository(db),
		repository.NewUserRepository(db),
		services.NewUploadService(storage),
	)
	ctrl := NewConcernController(svc)

	r := gin.New()
	auth := middlewares.AuthMiddleware(testSecret, entity.RoleCitizen)
	r.POST("/citizen/manual-concern", auth, ctrl.Submit)
	r.GET("/citizen/concerns", auth, ctrl.ListMine)

	token, err := utils.GenerateToken(citizen.ID, citizen.Role, testSecret, time.Hour)
	require.NoError(t, err)

	return &testEnv{router: r, db: db, citizen: citizen, token: token, calls: &calls}
}

func addFilePart(t *testing.T, w *multipart.Writer, field, filename, contentType string, size int) {
	t.Helper()
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("p"), size))
	require.NoError(t, err)
}

func TestSubmitConcern_EndToEnd(t *testing.T) {
	env := setupConcernEnv(t)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("title", "Pothole"))
	require.NoError(t, w.WriteField("description", "Large pothole on Main St"))
	require.NoError(t, w.WriteField("category", "Infrastructure"))
	addFilePart(t, w, "files", "pothole.jpg", "image/jpeg", 2<<20) // accepted
	addFilePart(t, w, "files", "pothole.png", "image/png", 6<<20) // over the 5 MiB limit
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/citizen/manual-concern", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+env.token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Concern struct {
				ID       uint   `json:"id"`
				Title    string `json:"title"`
				Category string `json:"category"`
				Status   string `json:"status"`
			} `json:"concern"`
			Images []string `json:"images"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.True(t, envelope.Success)
	assert.Equal(t, "Pothole", envelope.Data.Concern.Title)
	assert.Equal(t, entity.ConcernStatusPending, envelope.Data.Concern.Status)

	// The oversized PNG is rejected locally: it never hits the provider
	// and never shows up in the response.
	assert.Len(t, envelope.Data.Images, 1)
	assert.EqualValues(t, 1, atomic.LoadInt32(env.calls))

	var media []entity.ConcernMedia
	require.NoError(t, env.db.Find(&media).Error)
	require.Len(t, media, 1)
	assert.Equal(t, "pothole.jpg", media[0].FileName)
	assert.Equal(t, envelope.Data.Concern.ID, media[0].ConcernID)
}

func TestSubmitConcern_JSONBodyWithoutFiles(t *testing.T) {
	env := setupConcernEnv(t)

	payload := `{"title":"Noise","description":"Loud construction","category":"Noise","longitude":121.05,"latitude":14.55}`
	req := httptest.NewRequest(http.MethodPost, "/citizen/manual-concern", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+env.token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.EqualValues(t, 0, atomic.LoadInt32(env.calls))

	var concerns []entity.Concern
	require.NoError(t, env.db.Find(&concerns).Error)
	require.Len(t, concerns, 1)
	assert.Equal(t, env.citizen.ID, concerns[0].CitizenID)
	require.NotNil(t, concerns[0].Longitude)
	assert.InDelta(t, 121.05, *concerns[0].Longitude, 1e-6)
}

func TestSubmitConcern_ValidationError(t *testing.T) {
	env := setupConcernEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/citizen/manual-concern", bytes.NewBufferString(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+env.token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	env.db.Unscoped().Model(&entity.Concern{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSubmitConcern_RequiresAuth(t *testing.T) {
	env := setupConcernEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/citizen/manual-concern", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

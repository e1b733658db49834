package routes

import (
	"log"

	"github.com/Althirdy/urbanwatch-api-sub000/configs"
	"github.com/Althirdy/urbanwatch-api-sub000/controllers"
	"github.com/Althirdy/urbanwatch-api-sub000/entity"
	"github.com/Althirdy/urbanwatch-api-sub000/middlewares"
	"github.com/Althirdy/urbanwatch-api-sub000/pkg/cloudinary"
	"github.com/Althirdy/urbanwatch-api-sub000/repository"
	"github.com/Althirdy/urbanwatch-api-sub000/services"
	"github.com/Althirdy/urbanwatch-api-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	concernRepo := repository.NewConcernRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Storage client — fails fast on missing credentials
	storage, err := cloudinary.New(cloudinary.Config{
		CloudName:    cfg.CloudinaryCloudName,
		UploadPreset: cfg.CloudinaryUploadPreset,
	})
	if err != nil {
		log.Fatalf("storage client init failed: %v", err)
	}

	// Live feed hub for operator panels
	feed := ws.NewFeedHub()
	go feed.Run()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	uploadSvc := services.NewUploadService(storage)
	concernSvc := services.NewConcernService(db, concernRepo, userRepo, uploadSvc)
	concernSvc.Feed = feed
	concernSvc.UploadFolder = cfg.CloudinaryFolder
	reportSvc := services.NewReportService(db, reportRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	concernCtrl := controllers.NewConcernController(concernSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	deviceCtrl := controllers.NewDeviceController(db)
	locationCtrl := controllers.NewLocationController(db)
	contactCtrl := controllers.NewContactController(db)
	adminCtrl := controllers.NewAdminController(db)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Citizen API
	citizen := r.Group("/citizen", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCitizen))
	{
		citizen.POST("/manual-concern", concernCtrl.Submit)
		citizen.GET("/concerns", concernCtrl.ListMine)
		citizen.GET("/concerns/:id", concernCtrl.DetailMine)
	}

	// Report acknowledgment (operator or official)
	r.PATCH("/report/:id/acknowledge",
		middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOperator, entity.RoleOfficial),
		reportCtrl.Acknowledge)

	// Admin panel (operator only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOperator))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/users", adminCtrl.Users)
		admin.GET("/concerns", concernCtrl.ListAll)

		admin.GET("/reports", reportCtrl.List)
		admin.POST("/reports", reportCtrl.Create)
		admin.PATCH("/reports/:id/archive", reportCtrl.Archive)

		admin.GET("/devices", deviceCtrl.List)
		admin.POST("/devices", deviceCtrl.Create)
		admin.PATCH("/devices/:id", deviceCtrl.Update)
		admin.DELETE("/devices/:id", deviceCtrl.Delete)
		admin.GET("/device-types", deviceCtrl.ListTypes)

		admin.GET("/locations", locationCtrl.List)
		admin.POST("/locations", locationCtrl.Create)
		admin.PATCH("/locations/:id", locationCtrl.Update)
		admin.DELETE("/locations/:id", locationCtrl.Delete)

		admin.GET("/contacts", contactCtrl.List)
		admin.POST("/contacts", contactCtrl.Create)
		admin.PUT("/contacts/:id", contactCtrl.Update)
		admin.DELETE("/contacts/:id", contactCtrl.Delete)
	}

	// Live feed (operator/official)
	r.GET("/ws/feed",
		middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOperator, entity.RoleOfficial),
		feed.HandleWebSocket)
}

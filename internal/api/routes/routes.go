package routes

import (
	"fmt"

	"github.com/Top-Technologies/downtime/internal/api/handlers"
	"github.com/Top-Technologies/downtime/internal/api/middleware"
	"github.com/Top-Technologies/downtime/internal/auth"
	"github.com/Top-Technologies/downtime/internal/cache"
	"github.com/Top-Technologies/downtime/internal/config"
	"github.com/Top-Technologies/downtime/internal/repository"
	"github.com/Top-Technologies/downtime/internal/service"
	"github.com/Top-Technologies/downtime/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Backends holds the optional infrastructure clients. Nil fields disable the feature.
type Backends struct {
	Redis   *cache.ReasonCache
	Storage *storage.MinIOClient
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, backends Backends) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validate := validator.New()

	// Optional backends; keep interfaces nil rather than typed-nil pointers
	var reasonCache service.ReasonCache
	var objectStorage service.ObjectStorage
	pingers := map[string]handlers.Pinger{}
	if backends.Redis != nil {
		reasonCache = backends.Redis
		pingers["redis"] = backends.Redis
	}
	if backends.Storage != nil {
		objectStorage = backends.Storage
		pingers["minio"] = backends.Storage
	}

	// Initialize repositories
	txManager := repository.NewTransactionManager(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewProductionOrderRepository(db)
	reasonRepo := repository.NewDowntimeReasonRepository(db)
	logRepo := repository.NewDowntimeLogRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)

	// Initialize services
	notificationService := service.NewNotificationService(messageRepo, activityRepo)
	departmentService := service.NewDepartmentService(departmentRepo, validate)
	userService := service.NewUserService(userRepo, departmentRepo, validate)
	orderService := service.NewProductionOrderService(orderRepo, validate)
	reasonService := service.NewDowntimeReasonService(reasonRepo, departmentRepo, userRepo, reasonCache, validate)
	logService := service.NewDowntimeLogService(service.DowntimeLogDeps{
		TxManager:            txManager,
		LogRepo:              logRepo,
		ReasonRepo:           reasonRepo,
		UserRepo:             userRepo,
		OrderRepo:            orderRepo,
		SequenceRepo:         sequenceRepo,
		MessageRepo:          messageRepo,
		ActivityRepo:         activityRepo,
		Audit:                notificationService,
		Scheduler:            notificationService,
		Validator:            validate,
		EnforceEndAfterStart: cfg.EnforceEndAfterStart,
	})
	activityService := service.NewActivityService(activityRepo)
	directoryService := service.NewDirectoryService(cfg, userRepo, departmentRepo, validate)
	exportService := service.NewExportService(logService)
	attachmentService := service.NewAttachmentService(attachmentRepo, logRepo, userRepo, objectStorage, notificationService)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)
	authHandler := auth.NewAuthHandler()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, pingers)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	userHandler := handlers.NewUserHandler(userService)
	orderHandler := handlers.NewProductionOrderHandler(orderService)
	reasonHandler := handlers.NewDowntimeReasonHandler(reasonService)
	logHandler := handlers.NewDowntimeLogHandler(logService, exportService, attachmentService)
	activityHandler := handlers.NewActivityHandler(activityService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/auth/validate", authHandler.Validate)

		departments := v1.Group("/departments")
		{
			departments.GET("", departmentHandler.ListDepartments)
			departments.POST("", departmentHandler.CreateDepartment)
			departments.GET("/:id", departmentHandler.GetDepartment)
		}

		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/me", userHandler.GetCurrentUser)
			users.GET("/:id", userHandler.GetUser)
		}

		directory := v1.Group("/directory")
		{
			directory.GET("/users", directoryHandler.SearchDirectoryUsers)
			directory.POST("/import", directoryHandler.ImportDirectoryUser)
		}

		orders := v1.Group("/production-orders")
		{
			orders.GET("", orderHandler.SearchProductionOrders)
			orders.POST("", orderHandler.CreateProductionOrder)
			orders.GET("/:id", orderHandler.GetProductionOrder)
		}

		reasons := v1.Group("/downtime-reasons")
		{
			reasons.GET("", reasonHandler.ListDowntimeReasons)
			reasons.POST("", reasonHandler.CreateDowntimeReason)
			reasons.GET("/:id", reasonHandler.GetDowntimeReason)
			reasons.PUT("/:id", reasonHandler.UpdateDowntimeReason)
		}

		logs := v1.Group("/downtime-logs")
		{
			logs.GET("", logHandler.ListDowntimeLogs)
			logs.POST("", logHandler.CreateDowntimeLog)
			logs.GET("/export", logHandler.ExportDowntimeLogs)
			logs.GET("/:id", logHandler.GetDowntimeLog)
			logs.PUT("/:id", logHandler.UpdateDowntimeLog)
			logs.POST("/:id/submit", logHandler.SubmitDowntimeLog)
			logs.POST("/:id/edit", logHandler.EditDowntimeLog)
			logs.POST("/:id/update-submit", logHandler.UpdateSubmitDowntimeLog)
			logs.POST("/:id/approve", logHandler.ApproveDowntimeLog)
			logs.GET("/:id/messages", logHandler.GetDowntimeLogMessages)
			logs.GET("/:id/activities", logHandler.GetDowntimeLogActivities)
			logs.GET("/:id/attachments", logHandler.ListAttachments)
			logs.POST("/:id/attachments", logHandler.UploadAttachment)
		}

		activities := v1.Group("/activities")
		{
			activities.GET("/mine", activityHandler.ListMyActivities)
			activities.POST("/:id/done", activityHandler.MarkActivityDone)
		}
	}

	logrus.WithFields(logrus.Fields{
		"reason_cache": reasonCache != nil,
		"attachments":  objectStorage != nil,
		"directory":    cfg.LDAPEnabled(),
	}).Info("Routes configured")

	return router, nil
}

package routes

import (
	"net/http"

	"workflow-portal-backend/internal/api/handlers"
	"workflow-portal-backend/internal/api/middleware"
	"workflow-portal-backend/internal/auth"
	"workflow-portal-backend/internal/config"
	"workflow-portal-backend/internal/database/models"
	"workflow-portal-backend/internal/events"
	"workflow-portal-backend/internal/repository"
	"workflow-portal-backend/internal/service"
	"workflow-portal-backend/internal/session"
	"workflow-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the infrastructure adapters the services run on
type Dependencies struct {
	Storage   storage.Storage
	Sessions  session.Store
	Publisher events.Publisher
}

// Services is the wired service layer, shared by the router and the scheduler
type Services struct {
	Users         service.UserServiceInterface
	Teams         service.TeamServiceInterface
	Onboarding    service.OnboardingServiceInterface
	WorkCycles    service.WorkCycleServiceInterface
	WorkItems     service.WorkItemServiceInterface
	Attachments   service.AttachmentServiceInterface
	Folders       service.FolderServiceInterface
	Notifications service.NotificationServiceInterface
	Analytics     service.AnalyticsServiceInterface
	Auth          *auth.AuthService
}

// NewServices wires repositories and services on db
func NewServices(db *gorm.DB, cfg *config.Config, deps Dependencies) (*Services, error) {
	validate := validator.New()
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	sessions := deps.Sessions
	if sessions == nil {
		sessions = session.NewMemoryStore()
	}

	stores := repository.NewStores(db)
	tx := repository.NewTransactionManager(db)

	analyticsService := service.NewAnalyticsService(stores.Analytics, stores.WorkCycles, stores.WorkItems, stores.Attachments, stores.Memberships, stores.Users)
	notificationService := service.NewNotificationService(stores.Notifications, stores.Users, stores.WorkItems, publisher)
	attachmentService := service.NewAttachmentService(stores, tx, deps.Storage, validate)

	authService, err := auth.NewAuthService(stores.Users, cfg.JWTSecret, cfg.JWTTTL())
	if err != nil {
		return nil, err
	}

	return &Services{
		Users:         service.NewUserService(stores.Users, validate),
		Teams:         service.NewTeamService(stores.Teams, stores.Memberships, stores.Users, tx, validate),
		Onboarding:    service.NewOnboardingService(stores.Users, stores.Teams, tx, sessions, cfg.OnboardingTTL()),
		WorkCycles:    service.NewWorkCycleService(stores, tx, analyticsService, notificationService, publisher, validate),
		WorkItems:     service.NewWorkItemService(stores, attachmentService, notificationService, analyticsService, publisher, validate),
		Attachments:   attachmentService,
		Folders:       service.NewFolderService(stores.Folders, stores.Attachments, stores.Memberships, stores.Teams, validate),
		Notifications: notificationService,
		Analytics:     analyticsService,
		Auth:          authService,
	}, nil
}

// SetupRoutes configures all the routes for the application.
// probes are reported by the health endpoints next to the database.
func SetupRoutes(db *gorm.DB, cfg *config.Config, svc *Services, probes map[string]handlers.Pinger) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.MaxMultipartMemory = 8 << 20

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	authMiddleware := auth.NewAuthMiddleware(svc.Auth)
	requireAdmin := authMiddleware.RequireRole(models.LoginRoleAdmin)
	requireStaff := authMiddleware.RequireRole(models.LoginRoleAdmin, models.LoginRoleManager)

	authHandler := auth.NewAuthHandler(svc.Auth, svc.Users)
	healthHandler := handlers.NewHealthHandler(db, probes)
	userHandler := handlers.NewUserHandler(svc.Users)
	onboardingHandler := handlers.NewOnboardingHandler(svc.Onboarding)
	teamHandler := handlers.NewTeamHandler(svc.Teams)
	workCycleHandler := handlers.NewWorkCycleHandler(svc.WorkCycles)
	workItemHandler := handlers.NewWorkItemHandler(svc.WorkItems, svc.Attachments, cfg.MaxUploadBytes())
	fileHandler := handlers.NewFileManagerHandler(svc.Folders, svc.Attachments)
	notificationHandler := handlers.NewNotificationHandler(svc.Notifications)
	analyticsHandler := handlers.NewAnalyticsHandler(svc.Analytics)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/api/auth/login", authHandler.Login)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/me", authHandler.Me)

		// User administration and onboarding
		users := v1.Group("/users", requireAdmin)
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)

			users.GET("/:id/onboarding", onboardingHandler.GetState)
			users.DELETE("/:id/onboarding", onboardingHandler.Restart)
			users.POST("/:id/onboarding/division", onboardingHandler.SelectDivision)
			users.POST("/:id/onboarding/section", onboardingHandler.SelectSection)
			users.POST("/:id/onboarding/service", onboardingHandler.SelectService)
			users.POST("/:id/onboarding/unit", onboardingHandler.SelectUnit)
			users.POST("/:id/onboarding/complete", onboardingHandler.Complete)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/tree", teamHandler.GetTree)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.GET("/:id/chain", teamHandler.GetChain)
			teams.GET("/:id/members", teamHandler.ListMembers)

			teams.POST("", requireAdmin, teamHandler.CreateTeam)
			teams.PUT("/:id", requireAdmin, teamHandler.UpdateTeam)
			teams.DELETE("/:id", requireAdmin, teamHandler.DeleteTeam)
			teams.POST("/:id/members", requireAdmin, teamHandler.AddMember)
			teams.DELETE("/:id/members/:user_id", requireAdmin, teamHandler.RemoveMember)
		}

		// Work cycle routes
		workCycles := v1.Group("/workcycles")
		{
			workCycles.GET("", workCycleHandler.ListWorkCycles)
			workCycles.GET("/:id", workCycleHandler.GetWorkCycle)
			workCycles.GET("/:id/items", workCycleHandler.ListItems)

			workCycles.POST("", requireAdmin, workCycleHandler.CreateWorkCycle)
			workCycles.PUT("/:id", requireAdmin, workCycleHandler.UpdateWorkCycle)
			workCycles.DELETE("/:id", requireAdmin, workCycleHandler.DeleteWorkCycle)
			workCycles.POST("/:id/reassign", requireAdmin, workCycleHandler.Reassign)
			workCycles.POST("/:id/archive", requireAdmin, workCycleHandler.Archive)
			workCycles.POST("/:id/restore", requireAdmin, workCycleHandler.Restore)

			workCycles.GET("/:id/analytics", requireStaff, analyticsHandler.WorkCycle)
			workCycles.GET("/:id/analytics/snapshots", requireStaff, analyticsHandler.Snapshots)
			workCycles.GET("/:id/analytics/teams", requireStaff, analyticsHandler.Teams)
		}

		// Work item routes
		workItems := v1.Group("/work-items")
		{
			workItems.GET("", workItemHandler.ListWorkItems)
			workItems.GET("/:id", workItemHandler.GetWorkItem)
			workItems.PATCH("/:id/status", workItemHandler.UpdateStatus)
			workItems.PATCH("/:id/context", workItemHandler.UpdateContext)
			workItems.POST("/:id/submit", workItemHandler.Submit)
			workItems.POST("/:id/review", requireAdmin, workItemHandler.Review)
			workItems.GET("/:id/messages", workItemHandler.ListMessages)
			workItems.POST("/:id/messages", workItemHandler.PostMessage)
			workItems.GET("/:id/attachments", workItemHandler.ListAttachments)
			workItems.POST("/:id/attachments", workItemHandler.UploadAttachments)
		}

		// File manager routes
		folders := v1.Group("/folders", requireAdmin)
		{
			folders.GET("/root", fileHandler.GetRoot)
			folders.GET("/:id", fileHandler.GetFolder)
			folders.GET("/:id/path", fileHandler.GetPath)
			folders.POST("", fileHandler.CreateFolder)
			folders.PATCH("/:id", fileHandler.RenameFolder)
			folders.POST("/:id/move", fileHandler.MoveFolder)
			folders.DELETE("/:id", fileHandler.DeleteFolder)
		}

		attachments := v1.Group("/attachments")
		{
			attachments.POST("/move", requireAdmin, fileHandler.MoveAttachments)
			attachments.PATCH("/:id", requireAdmin, fileHandler.RenameAttachment)
			attachments.DELETE("/:id", requireAdmin, fileHandler.DeleteAttachment)
			// owner or admin, checked by the service
			attachments.GET("/:id/download", fileHandler.DownloadAttachment)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}

		// Analytics routes
		analytics := v1.Group("/analytics", requireStaff)
		{
			analytics.GET("/summary", analyticsHandler.Summary)
			analytics.GET("/users/:id", analyticsHandler.User)
		}
	}

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error":  "Method not allowed",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

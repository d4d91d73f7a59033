package routes

import (
	"vitalcare-server/internal/config"
	"vitalcare-server/internal/handlers"
	"vitalcare-server/internal/middleware"
	"vitalcare-server/internal/models"
	"vitalcare-server/internal/repository"
	"vitalcare-server/internal/services"
	"vitalcare-server/internal/vitals"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	// Stores and services
	patientRepo := repository.NewPatientRepo(db)
	vitalRepo := repository.NewVitalRepo(db)
	alertRepo := repository.NewAlertRepo(db)

	thresholds := vitals.DefaultTable()
	ingestion := services.NewIngestionService(patientRepo, vitalRepo, alertRepo, thresholds, logger)
	lifecycle := services.NewLifecycleService(alertRepo, patientRepo, logger)
	lifecycle.Strict = cfg.StrictAlertLifecycle
	dashboard := services.NewDashboardService(patientRepo, alertRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	patientHandler := handlers.NewPatientHandler(patientRepo)
	vitalHandler := handlers.NewVitalHandler(ingestion)
	alertHandler := handlers.NewAlertHandler(lifecycle)
	dashboardHandler := handlers.NewDashboardHandler(dashboard)
	appointmentHandler := handlers.NewAppointmentHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg)) // Apply JWT authentication middleware
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// User management routes
		userRoutes := private.Group("/users")
		{
			// Accessible by all authenticated users for appointment booking
			userRoutes.GET("/doctors", userHandler.GetDoctors)

			// Admin-only routes
			adminRoutes := userRoutes.Group("")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
			{
				adminRoutes.POST("", userHandler.CreateUser)
				adminRoutes.GET("", userHandler.GetUsers)
				adminRoutes.GET("/:id", userHandler.GetUserByID)
				adminRoutes.PUT("/:id", userHandler.UpdateUser)
				adminRoutes.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		// Patient and vital-sign routes (doctors only; ownership enforced
		// per-patient in the handlers/services)
		patientRoutes := private.Group("/patients")
		patientRoutes.Use(middleware.RoleAuthMiddleware(models.RoleDoctor))
		{
			patientRoutes.POST("", patientHandler.CreatePatient)
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatient)
			patientRoutes.PUT("/:id", patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", patientHandler.DeletePatient)

			patientRoutes.POST("/:id/vitals", vitalHandler.RecordVital)
			patientRoutes.GET("/:id/vitals", vitalHandler.GetVitalHistory)
		}

		// Alert routes (doctors only)
		alertRoutes := private.Group("/alerts")
		alertRoutes.Use(middleware.RoleAuthMiddleware(models.RoleDoctor))
		{
			alertRoutes.GET("", alertHandler.GetAlerts)
			alertRoutes.POST("", alertHandler.CreateAlert)
			alertRoutes.PUT("/:id/status", alertHandler.UpdateAlertStatus)
			alertRoutes.POST("/acknowledge", alertHandler.AcknowledgeAlerts)
		}

		// Dashboard rollups (doctors only)
		dashboardRoutes := private.Group("/dashboard")
		dashboardRoutes.Use(middleware.RoleAuthMiddleware(models.RoleDoctor))
		{
			dashboardRoutes.GET("/summary", dashboardHandler.GetSummary)
		}

		// Appointment routes
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", middleware.RoleAuthMiddleware(models.RolePatient, models.RoleAdmin), appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointmentsForUser)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/setu-platform/setu-admin/internal/auth"
	"github.com/setu-platform/setu-admin/internal/config"
	"github.com/setu-platform/setu-admin/internal/database"
	"github.com/setu-platform/setu-admin/internal/handlers"
	"github.com/setu-platform/setu-admin/internal/logging"
	"github.com/setu-platform/setu-admin/internal/services"
	"github.com/setu-platform/setu-admin/internal/status"
)

func main() {
	// 1. Environment and configuration
	_ = godotenv.Load()
	logger := logging.New()

	cfg, err := config.GetConfig()
	if err != nil {
		logging.LogFatal(logger, "Configuration loading error", err)
	}

	// 2. Database connection and migrations
	db, err := database.Connect(cfg.DbDSN)
	if err != nil {
		logging.LogFatal(logger, "Database connection error", err)
	}
	logging.LogInfo(logger, "Database connection established")
	if err := database.Migrate(db); err != nil {
		logging.LogFatal(logger, "Migration error", err)
	}

	// 3. Core services
	policy := status.Policy{Strict: cfg.StrictTransitions}
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db, policy)
	userService := services.NewUserService(db)
	reportService := services.NewReportService(db)
	dashboardService := services.NewDashboardService(db)

	// 4. Handlers
	masterHandler := handlers.NewMasterHandler(db, logger, cfg.ClampPages)
	jobHandler := handlers.NewJobHandler(jobService, applicationService, logger, cfg.ClampPages)
	applicationHandler := handlers.NewApplicationHandler(applicationService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	reportHandler := handlers.NewReportHandler(reportService, logger, cfg.ClampPages)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)

	// 5. Router and CORS
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true // For development only
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Routes: health is open, everything else requires an admin session
	api := r.Group("/api/v1")
	api.GET("/health", handlers.HealthCheck)

	protected := api.Group("", auth.RequireAdmin(db))
	masterHandler.Register(protected)
	jobHandler.Register(protected)
	applicationHandler.Register(protected)
	userHandler.Register(protected)
	reportHandler.Register(protected)
	dashboardHandler.Register(protected)

	logging.LogInfo(logger, "Server starting on port "+cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logging.LogFatal(logger, "Server failed to start", err)
	}
}

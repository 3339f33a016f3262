package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cooler-fleet-portal/internal/config"
	"cooler-fleet-portal/internal/database"
	"cooler-fleet-portal/internal/delivery/http/handler"
	"cooler-fleet-portal/internal/importer"
	"cooler-fleet-portal/internal/importjob"
	"cooler-fleet-portal/internal/logger"
	"cooler-fleet-portal/internal/middleware"
)

func SetupRoutes(cfg *config.Config, db *database.Database, manager *importjob.Manager, imp *importer.Importer, schedules *importjob.ScheduleStore) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	importHandler := handler.NewImportHandler(manager, imp, schedules, cfg.Import.DropDir)

	v1 := router.Group("/api/v1")
	{
		importHandler.RegisterRoutes(v1)
	}

	logger.Info("All routes initialized")
	return router
}

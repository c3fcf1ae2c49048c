package http

import (
	"github.com/gin-gonic/gin"
	"github.com/vybe/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = maxUploadBytes

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API routes
	api := router.Group("/api")
	{
		api.POST("/generate", handler.Generate)
		api.POST("/feedback", handler.Feedback)
		api.POST("/recommendations", handler.Recommendations)

		looks := api.Group("/looks")
		{
			looks.GET("", handler.ListLooks)
			looks.POST("", handler.SaveLook)
			looks.DELETE("/:id", handler.DeleteLook)
			looks.GET("/:id/:view", handler.LookImage)
		}
	}

	return router
}

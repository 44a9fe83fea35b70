package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/dabmux-gui/internal/api/handlers"
	"github.com/jroosing/dabmux-gui/internal/api/middleware"
	"github.com/jroosing/dabmux-gui/internal/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/dabmux-gui/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Health stays reachable for probes without the key.
	api.GET("/health", h.Health)

	protected := api.Group("")
	if cfg != nil && cfg.API.APIKey != "" {
		protected.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	protected.GET("/config", h.GetConfig)

	protected.GET("/params", h.ListParams)
	protected.POST("/params", h.SetParam)

	protected.GET("/stats", h.Stats)
	protected.GET("/dashboard", h.Dashboard)
}

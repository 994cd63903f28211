package routes

import (
	"net/http"

	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes монтирует все маршруты приложения под /api
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		h.Auth.RegisterRoutes(api)
		h.Job.RegisterRoutes(api)
		h.Application.RegisterRoutes(api)
		h.Favorite.RegisterRoutes(api)
		h.Admin.RegisterRoutes(api)
	}
}

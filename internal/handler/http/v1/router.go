package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	incidents := protected.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/all", h.listAllIncidents)
		incidents.POST("/refresh", h.refresh)
		incidents.POST("/load-more", h.loadMore)
		incidents.POST("/poll", h.pollNew)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id", h.updateIncident)
		incidents.POST("/:id/read", h.markRead)
	}

	protected.GET("/notifications/unread-count", h.unreadCount)

	settings := protected.Group("/settings")
	{
		settings.GET("/filters", h.getFilterSettings)
		settings.PATCH("/filters", h.updateFilterSettings)
		settings.GET("/notifications", h.getNotificationSettings)
		settings.PATCH("/notifications", h.updateNotificationSettings)
	}

	protected.GET("/shifts", h.getShifts)
	protected.GET("/statistics", h.getStatistics)
	protected.POST("/app/state", h.setAppState)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

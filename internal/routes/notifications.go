package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/handlers"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/middleware"
)

func RegisterNotificationRoutes(rg *gin.RouterGroup) {
	n := rg.Group("/notifications")
	n.Use(middleware.AuthMiddleware())
	{
		n.GET("", handlers.ListNotifications)
		n.PUT("/read-all", handlers.MarkAllNotificationsRead)
		n.PUT("/:id/read", handlers.MarkNotificationRead)
	}
}

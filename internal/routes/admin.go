package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/handlers"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/middleware"
)

func RegisterAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.GET("/dashboard", handlers.AdminGetDashboard)

	// User moderation
	admin.GET("/users", handlers.AdminListUsers)
	admin.PUT("/users/:id/ban", handlers.AdminBanUser)
	admin.PUT("/users/:id/unban", handlers.AdminUnbanUser)

	// Report review
	admin.GET("/reports", handlers.AdminListReports)
	admin.PUT("/reports/:id", handlers.AdminReviewReport)

	// Content moderation
	admin.PUT("/artworks/:id/status", handlers.AdminSetArtworkStatus)
	admin.GET("/comments", handlers.AdminListComments)
}

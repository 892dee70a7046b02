package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/handlers"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/middleware"
)

func RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", handlers.Signup)
	rg.POST("/login", handlers.Login)

	rg.GET("/profile", middleware.AuthMiddleware(), handlers.GetProfile)
	rg.POST("/refresh", middleware.AuthMiddleware(), handlers.RefreshToken)
}

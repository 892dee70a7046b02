package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/handlers"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/middleware"
)

func RegisterUserRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		protected := users.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.PUT("/me", handlers.UpdateMe)
			protected.POST("/:id/follow", handlers.ToggleFollow)
		}

		users.GET("/:id/followers", handlers.ListFollowers)
		users.GET("/:id/following", handlers.ListFollowing)
		users.GET("/:id/artworks", handlers.ListUserArtworks)
		users.GET("/:id", middleware.OptionalAuthMiddleware(), handlers.GetUserProfile)
	}
}

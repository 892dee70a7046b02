package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/handlers"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/middleware"
)

func RegisterCommentRoutes(rg *gin.RouterGroup) {
	comments := rg.Group("/comments")
	{
		comments.GET("/artwork/:artworkId", handlers.ListComments)

		protected := comments.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/artwork/:artworkId", handlers.CreateComment)
			protected.PUT("/:id", handlers.UpdateComment)
			protected.DELETE("/:id", handlers.DeleteComment)
		}
	}
}

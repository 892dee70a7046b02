package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/handlers"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/middleware"
)

func RegisterArtworkRoutes(rg *gin.RouterGroup) {
	artworks := rg.Group("/artworks")
	{
		// Public browsing; optional auth enriches responses with the
		// viewer's like/favorite state.
		artworks.GET("", middleware.OptionalAuthMiddleware(), handlers.ListArtworks)

		protected := artworks.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/favorites", handlers.ListFavorites)
			protected.POST("", middleware.ArtistOnly(), middleware.UploadRateLimit(), handlers.CreateArtwork)
			protected.PUT("/:id", handlers.UpdateArtwork)
			protected.DELETE("/:id", handlers.DeleteArtwork)
			protected.POST("/:id/like", handlers.ToggleLike)
			protected.POST("/:id/favorite", handlers.ToggleFavorite)
		}

		// Registered after /favorites so the static route wins.
		artworks.GET("/:id", middleware.OptionalAuthMiddleware(), handlers.GetArtwork)
	}
}

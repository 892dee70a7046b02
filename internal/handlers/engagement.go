package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/logger"
)

// ToggleLike handles POST /artworks/:id/like. Flips the (user,
// artwork) membership in the likes table and keeps the denormalized
// LikeCount in step, both inside one transaction.
func ToggleLike(c *gin.Context) {
	userID, _ := currentUserID(c)
	artworkID := c.Param("id")

	var artwork models.Artwork
	if err := database.DB.First(&artwork, "id = ? AND status = ?", artworkID, models.StatusActive).Error; err != nil {
		respondError(c, http.StatusNotFound, "Artwork not found")
		return
	}

	var isLiked bool
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("user_id = ? AND artwork_id = ?", userID, artworkID).First(&existing).Error

		switch err {
		case nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Artwork{}).Where("id = ?", artworkID).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
				return err
			}
			isLiked = false
		case gorm.ErrRecordNotFound:
			if err := tx.Create(&models.Like{UserID: userID, ArtworkID: artworkID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Artwork{}).Where("id = ?", artworkID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return err
			}
			isLiked = true
		default:
			return err
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Str("artwork_id", artworkID).Msg("Like toggle failed")
		respondServerError(c)
		return
	}

	likeCount := artwork.LikeCount
	if isLiked {
		likeCount++
		if artwork.ArtistID != userID {
			notifyUser(models.Notification{
				UserID:    artwork.ArtistID,
				ActorID:   userID,
				Type:      models.NotificationTypeLike,
				ArtworkID: &artwork.ID,
				Message:   "liked your artwork",
			})
		}
	} else {
		likeCount--
	}

	respondOK(c, http.StatusOK, "", gin.H{"isLiked": isLiked, "likeCount": likeCount})
}

// ToggleFavorite handles POST /artworks/:id/favorite. Same toggle
// shape as likes but favorites carry no counter on the artwork.
func ToggleFavorite(c *gin.Context) {
	userID, _ := currentUserID(c)
	artworkID := c.Param("id")

	var artwork models.Artwork
	if err := database.DB.First(&artwork, "id = ? AND status = ?", artworkID, models.StatusActive).Error; err != nil {
		respondError(c, http.StatusNotFound, "Artwork not found")
		return
	}

	var isFavorited bool
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Favorite
		err := tx.Where("user_id = ? AND artwork_id = ?", userID, artworkID).First(&existing).Error

		switch err {
		case nil:
			isFavorited = false
			return tx.Delete(&existing).Error
		case gorm.ErrRecordNotFound:
			isFavorited = true
			return tx.Create(&models.Favorite{UserID: userID, ArtworkID: artworkID}).Error
		default:
			return err
		}
	})
	if err != nil {
		logger.Error().Err(err).Str("artwork_id", artworkID).Msg("Favorite toggle failed")
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{"isFavorited": isFavorited})
}

// ListFavorites handles GET /artworks/favorites for the current user.
func ListFavorites(c *gin.Context) {
	userID, _ := currentUserID(c)
	p := parsePagination(c)

	base := database.DB.Model(&models.Artwork{}).
		Joins("JOIN favorites ON favorites.artwork_id = artworks.id").
		Where("favorites.user_id = ? AND artworks.status = ?", userID, models.StatusActive)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to count favorites")
		respondServerError(c)
		return
	}

	var artworks []models.Artwork
	if err := base.Preload("Artist").Order("favorites.created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&artworks).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list favorites")
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"artworks":   artworks,
		"pagination": pageMeta(p, total),
	})
}

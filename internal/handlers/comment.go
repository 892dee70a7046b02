package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/logger"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/utils"
)

type CreateCommentInput struct {
	Content  string  `json:"content" binding:"required"`
	ParentID *string `json:"parentId"`
}

// CreateComment handles POST /comments/artwork/:artworkId. A reply's
// parent must exist, be active, and belong to the same artwork.
// Replies count toward the artwork's CommentCount the same as
// top-level comments.
func CreateComment(c *gin.Context) {
	userID, _ := currentUserID(c)
	artworkID := c.Param("artworkId")

	var input CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	content := utils.SanitizeUserContent(strings.TrimSpace(input.Content))
	if content == "" {
		respondError(c, http.StatusBadRequest, "Comment cannot be empty")
		return
	}

	var artwork models.Artwork
	if err := database.DB.First(&artwork, "id = ? AND status = ?", artworkID, models.StatusActive).Error; err != nil {
		respondError(c, http.StatusNotFound, "Artwork not found")
		return
	}

	if input.ParentID != nil {
		var parent models.Comment
		err := database.DB.First(&parent, "id = ? AND artwork_id = ? AND status = ?",
			*input.ParentID, artworkID, models.StatusActive).Error
		if err != nil {
			respondError(c, http.StatusNotFound, "Parent comment not found")
			return
		}
	}

	comment := models.Comment{
		ArtworkID: artworkID,
		UserID:    userID,
		ParentID:  input.ParentID,
		Content:   utils.TruncateString(content, 2000),
		Status:    models.StatusActive,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Artwork{}).Where("id = ?", artworkID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
	})
	if err != nil {
		logger.Error().Err(err).Str("artwork_id", artworkID).Msg("Failed to create comment")
		respondServerError(c)
		return
	}

	if artwork.ArtistID != userID {
		notifyUser(models.Notification{
			UserID:    artwork.ArtistID,
			ActorID:   userID,
			Type:      models.NotificationTypeComment,
			ArtworkID: &artwork.ID,
			CommentID: &comment.ID,
			Message:   "commented on your artwork",
		})
	}

	database.DB.Preload("User").First(&comment, "id = ?", comment.ID)
	respondOK(c, http.StatusCreated, "Comment posted", gin.H{"comment": comment})
}

// ListComments handles GET /comments/artwork/:artworkId. Returns
// paginated active top-level comments with their active replies.
func ListComments(c *gin.Context) {
	artworkID := c.Param("artworkId")
	p := parsePagination(c)

	var artwork models.Artwork
	if err := database.DB.First(&artwork, "id = ? AND status = ?", artworkID, models.StatusActive).Error; err != nil {
		respondError(c, http.StatusNotFound, "Artwork not found")
		return
	}

	base := database.DB.Model(&models.Comment{}).
		Where("artwork_id = ? AND parent_id IS NULL AND status = ?", artworkID, models.StatusActive)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		respondServerError(c)
		return
	}

	var comments []models.Comment
	err := base.
		Preload("User").
		Preload("Replies", "status = ?", models.StatusActive).
		Preload("Replies.User").
		Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&comments).Error
	if err != nil {
		logger.Error().Err(err).Str("artwork_id", artworkID).Msg("Failed to list comments")
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"comments":   comments,
		"pagination": pageMeta(p, total),
	})
}

type UpdateCommentInput struct {
	Content string `json:"content" binding:"required"`
}

// UpdateComment handles PUT /comments/:id. Author only.
func UpdateComment(c *gin.Context) {
	userID, _ := currentUserID(c)

	var comment models.Comment
	if err := database.DB.First(&comment, "id = ? AND status = ?", c.Param("id"), models.StatusActive).Error; err != nil {
		respondError(c, http.StatusNotFound, "Comment not found")
		return
	}
	if comment.UserID != userID {
		respondError(c, http.StatusNotFound, "Comment not found")
		return
	}

	var input UpdateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	content := utils.SanitizeUserContent(strings.TrimSpace(input.Content))
	if content == "" {
		respondError(c, http.StatusBadRequest, "Comment cannot be empty")
		return
	}

	if err := database.DB.Model(&comment).Update("content", utils.TruncateString(content, 2000)).Error; err != nil {
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "Comment updated", gin.H{"comment": comment})
}

// DeleteComment handles DELETE /comments/:id. Author or admin.
//
// The cascade touches only the direct children of the deleted
// comment: the comment is soft-deleted and CommentCount decremented by
// one, then any active direct replies are bulk soft-deleted with a
// second decrement by the reply count. Replies below depth one are
// left active.
func DeleteComment(c *gin.Context) {
	userID, _ := currentUserID(c)

	var comment models.Comment
	if err := database.DB.First(&comment, "id = ? AND status = ?", c.Param("id"), models.StatusActive).Error; err != nil {
		respondError(c, http.StatusNotFound, "Comment not found")
		return
	}

	if comment.UserID != userID && !currentRole(c).CanModerate() {
		respondError(c, http.StatusNotFound, "Comment not found")
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Comment{}).Where("id = ?", comment.ID).
			Update("status", models.StatusDeleted).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Artwork{}).Where("id = ?", comment.ArtworkID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - 1")).Error; err != nil {
			return err
		}

		var replyCount int64
		if err := tx.Model(&models.Comment{}).
			Where("parent_id = ? AND status = ?", comment.ID, models.StatusActive).
			Count(&replyCount).Error; err != nil {
			return err
		}

		if replyCount > 0 {
			if err := tx.Model(&models.Comment{}).
				Where("parent_id = ? AND status = ?", comment.ID, models.StatusActive).
				Update("status", models.StatusDeleted).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Artwork{}).Where("id = ?", comment.ArtworkID).
				UpdateColumn("comment_count", gorm.Expr("comment_count - ?", replyCount)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Str("comment_id", comment.ID).Msg("Comment delete failed")
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "Comment deleted", nil)
}

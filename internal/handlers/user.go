package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/logger"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/utils"
)

// GetUserProfile handles GET /users/:id. The parameter is a username
// or a user id. Banned accounts are not served.
func GetUserProfile(c *gin.Context) {
	param := c.Param("id")

	var user models.User
	if err := database.DB.Where("(username = ? OR id = ?) AND is_active = ?", param, param, true).First(&user).Error; err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	var artworkCount int64
	database.DB.Model(&models.Artwork{}).
		Where("artist_id = ? AND status = ?", user.ID, models.StatusActive).
		Count(&artworkCount)

	data := gin.H{
		"user":         user,
		"artworkCount": artworkCount,
	}

	if viewerID, ok := currentUserID(c); ok && viewerID != user.ID {
		var followCount int64
		database.DB.Model(&models.Follow{}).
			Where("follower_id = ? AND following_id = ?", viewerID, user.ID).
			Count(&followCount)
		data["isFollowing"] = followCount > 0
	}

	respondOK(c, http.StatusOK, "", data)
}

type UpdateMeInput struct {
	DisplayName *string `json:"displayName"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatarUrl"`
}

// UpdateMe handles PUT /users/me.
func UpdateMe(c *gin.Context) {
	userID, _ := currentUserID(c)

	var input UpdateMeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if input.DisplayName != nil {
		updates["display_name"] = utils.TruncateString(*input.DisplayName, 80)
	}
	if input.Bio != nil {
		updates["bio"] = utils.TruncateString(utils.SanitizeUserContent(*input.Bio), 1000)
	}
	if input.AvatarURL != nil {
		updates["avatar_url"] = *input.AvatarURL
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			logger.Error().Err(err).Msg("Failed to update profile")
			respondServerError(c)
			return
		}
	}

	var user models.User
	database.DB.First(&user, "id = ?", userID)
	respondOK(c, http.StatusOK, "Profile updated", gin.H{"user": user})
}

// ToggleFollow handles POST /users/:id/follow. Creates or removes the
// follow edge and keeps both users' denormalized counters in the same
// transaction.
func ToggleFollow(c *gin.Context) {
	followerID, _ := currentUserID(c)
	targetID := c.Param("id")

	if followerID == targetID {
		respondError(c, http.StatusBadRequest, "Cannot follow yourself")
		return
	}

	var target models.User
	if err := database.DB.First(&target, "id = ? AND is_active = ?", targetID, true).Error; err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	var isFollowing bool
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Follow
		err := tx.Where("follower_id = ? AND following_id = ?", followerID, targetID).First(&existing).Error

		switch err {
		case nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			isFollowing = false
			return applyFollowCounters(tx, followerID, targetID, -1)
		case gorm.ErrRecordNotFound:
			if err := tx.Create(&models.Follow{FollowerID: followerID, FollowingID: targetID}).Error; err != nil {
				return err
			}
			isFollowing = true
			return applyFollowCounters(tx, followerID, targetID, +1)
		default:
			return err
		}
	})
	if err != nil {
		logger.Error().Err(err).Str("target_id", targetID).Msg("Follow toggle failed")
		respondServerError(c)
		return
	}

	if isFollowing {
		notifyUser(models.Notification{
			UserID:  targetID,
			ActorID: followerID,
			Type:    models.NotificationTypeFollow,
			Message: "started following you",
		})
	}

	respondOK(c, http.StatusOK, "", gin.H{"isFollowing": isFollowing})
}

// applyFollowCounters shifts both follow counters by delta, touching
// users in deterministic id order to avoid deadlocks under concurrent
// toggles.
func applyFollowCounters(tx *gorm.DB, followerID, targetID string, delta int) error {
	type update struct {
		id     string
		column string
	}
	updates := []update{
		{id: followerID, column: "following_count"},
		{id: targetID, column: "follower_count"},
	}
	if updates[0].id > updates[1].id {
		updates[0], updates[1] = updates[1], updates[0]
	}

	for _, u := range updates {
		err := tx.Model(&models.User{}).Where("id = ?", u.id).
			UpdateColumn(u.column, gorm.Expr(u.column+" + ?", delta)).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// ListFollowers handles GET /users/:id/followers.
func ListFollowers(c *gin.Context) {
	listFollowEdges(c, "following_id", "Follower")
}

// ListFollowing handles GET /users/:id/following.
func ListFollowing(c *gin.Context) {
	listFollowEdges(c, "follower_id", "Following")
}

func listFollowEdges(c *gin.Context, matchColumn, preload string) {
	userID := c.Param("id")
	p := parsePagination(c)

	base := database.DB.Model(&models.Follow{}).Where(matchColumn+" = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		respondServerError(c)
		return
	}

	var follows []models.Follow
	if err := base.Preload(preload).Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&follows).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list follows")
		respondServerError(c)
		return
	}

	users := make([]models.PublicProfile, 0, len(follows))
	for _, f := range follows {
		if preload == "Follower" {
			users = append(users, f.Follower.Public())
		} else {
			users = append(users, f.Following.Public())
		}
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"users":      users,
		"pagination": pageMeta(p, total),
	})
}

// ListUserArtworks handles GET /users/:id/artworks.
func ListUserArtworks(c *gin.Context) {
	userID := c.Param("id")
	p := parsePagination(c)

	base := database.DB.Model(&models.Artwork{}).
		Where("artist_id = ? AND status = ?", userID, models.StatusActive)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		respondServerError(c)
		return
	}

	var artworks []models.Artwork
	if err := base.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&artworks).Error; err != nil {
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"artworks":   artworks,
		"pagination": pageMeta(p, total),
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/logger"
)

// notifyUser records a notification. Failures are logged, never
// surfaced; notification delivery must not fail the triggering action.
func notifyUser(n models.Notification) {
	if err := database.DB.Create(&n).Error; err != nil {
		logger.Warn().Err(err).Str("recipient", n.UserID).Msg("Failed to create notification")
	}
}

// ListNotifications handles GET /notifications.
func ListNotifications(c *gin.Context) {
	userID, _ := currentUserID(c)
	p := parsePagination(c)

	base := database.DB.Model(&models.Notification{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		respondServerError(c)
		return
	}

	var unread int64
	database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread)

	var notifications []models.Notification
	if err := base.Preload("Actor").Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&notifications).Error; err != nil {
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"notifications": notifications,
		"unreadCount":   unread,
		"pagination":    pageMeta(p, total),
	})
}

// MarkNotificationRead handles PUT /notifications/:id/read.
func MarkNotificationRead(c *gin.Context) {
	userID, _ := currentUserID(c)

	var n models.Notification
	if err := database.DB.First(&n, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Notification not found")
		return
	}

	if err := database.DB.Model(&n).Update("is_read", true).Error; err != nil {
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", nil)
}

// MarkAllNotificationsRead handles PUT /notifications/read-all.
func MarkAllNotificationsRead(c *gin.Context) {
	userID, _ := currentUserID(c)

	err := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "All notifications marked read", nil)
}

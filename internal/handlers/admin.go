package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/logger"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/utils"
)

// AdminGetDashboard handles GET /admin/dashboard.
func AdminGetDashboard(c *gin.Context) {
	var (
		totalUsers     int64
		bannedUsers    int64
		totalArtworks  int64
		activeComments int64
		pendingReports int64
	)

	database.DB.Model(&models.User{}).Count(&totalUsers)
	database.DB.Model(&models.User{}).Where("is_active = ?", false).Count(&bannedUsers)
	database.DB.Model(&models.Artwork{}).Where("status = ?", models.StatusActive).Count(&totalArtworks)
	database.DB.Model(&models.Comment{}).Where("status = ?", models.StatusActive).Count(&activeComments)
	database.DB.Model(&models.Report{}).Where("status = ?", models.ReportPending).Count(&pendingReports)

	respondOK(c, http.StatusOK, "", gin.H{
		"totalUsers":     totalUsers,
		"bannedUsers":    bannedUsers,
		"totalArtworks":  totalArtworks,
		"activeComments": activeComments,
		"pendingReports": pendingReports,
	})
}

// AdminListUsers handles GET /admin/users with optional ?search=.
func AdminListUsers(c *gin.Context) {
	p := parsePagination(c)

	query := database.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		pattern := utils.SanitizeSearchQuery(search)
		query = query.Where("username ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondServerError(c)
		return
	}

	var users []models.User
	if err := query.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&users).Error; err != nil {
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"users":      users,
		"pagination": pageMeta(p, total),
	})
}

// AdminBanUser handles PUT /admin/users/:id/ban. Banning yourself or
// an already-banned user is rejected.
func AdminBanUser(c *gin.Context) {
	adminID, _ := currentUserID(c)
	targetID := c.Param("id")

	if targetID == adminID {
		respondError(c, http.StatusBadRequest, "Cannot ban your own account")
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", targetID).Error; err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	if !user.IsActive {
		respondError(c, http.StatusBadRequest, "User is already banned")
		return
	}

	if err := database.DB.Model(&user).Update("is_active", false).Error; err != nil {
		respondServerError(c)
		return
	}

	logger.Info().Str("admin_id", adminID).Str("user_id", targetID).Msg("User banned")
	respondOK(c, http.StatusOK, "User banned", gin.H{"user": user})
}

// AdminUnbanUser handles PUT /admin/users/:id/unban.
func AdminUnbanUser(c *gin.Context) {
	adminID, _ := currentUserID(c)
	targetID := c.Param("id")

	if targetID == adminID {
		respondError(c, http.StatusBadRequest, "Cannot unban your own account")
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", targetID).Error; err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	if user.IsActive {
		respondError(c, http.StatusBadRequest, "User is already active")
		return
	}

	if err := database.DB.Model(&user).Update("is_active", true).Error; err != nil {
		respondServerError(c)
		return
	}

	logger.Info().Str("admin_id", adminID).Str("user_id", targetID).Msg("User unbanned")
	respondOK(c, http.StatusOK, "User unbanned", gin.H{"user": user})
}

// AdminListReports handles GET /admin/reports with optional ?status=.
func AdminListReports(c *gin.Context) {
	p := parsePagination(c)

	query := database.DB.Model(&models.Report{})
	if status := c.Query("status"); status != "" {
		if !models.ValidReportStatus(models.ReportStatus(status)) {
			respondError(c, http.StatusBadRequest, "Invalid report status")
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondServerError(c)
		return
	}

	var reports []models.Report
	if err := query.Preload("Reporter").Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&reports).Error; err != nil {
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"reports":    reports,
		"pagination": pageMeta(p, total),
	})
}

type ReviewReportInput struct {
	Status string `json:"status" binding:"required"`
}

// AdminReviewReport handles PUT /admin/reports/:id. The reviewer and
// timestamp are stamped even when the status value does not change.
func AdminReviewReport(c *gin.Context) {
	adminID, _ := currentUserID(c)

	var input ReviewReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	status := models.ReportStatus(input.Status)
	if !models.ValidReportStatus(status) {
		respondError(c, http.StatusBadRequest, "Invalid report status")
		return
	}

	var report models.Report
	if err := database.DB.First(&report, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Report not found")
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      status,
		"reviewed_by": adminID,
		"reviewed_at": now,
	}
	if err := database.DB.Model(&report).Updates(updates).Error; err != nil {
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "Report updated", gin.H{"report": report})
}

type ArtworkStatusInput struct {
	Status     *string `json:"status"`
	IsFeatured *bool   `json:"isFeatured"`
}

// AdminSetArtworkStatus handles PUT /admin/artworks/:id/status.
// Unknown status values are rejected rather than silently dropped.
func AdminSetArtworkStatus(c *gin.Context) {
	var input ArtworkStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if input.Status == nil && input.IsFeatured == nil {
		respondError(c, http.StatusBadRequest, "Nothing to update")
		return
	}

	updates := map[string]interface{}{}
	if input.Status != nil {
		status := models.ContentStatus(*input.Status)
		if !models.ValidContentStatus(status) {
			respondError(c, http.StatusBadRequest, "Invalid artwork status")
			return
		}
		updates["status"] = status
	}
	if input.IsFeatured != nil {
		updates["is_featured"] = *input.IsFeatured
	}

	var artwork models.Artwork
	if err := database.DB.First(&artwork, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Artwork not found")
		return
	}

	if err := database.DB.Model(&artwork).Updates(updates).Error; err != nil {
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "Artwork updated", gin.H{"artwork": artwork})
}

// AdminListComments handles GET /admin/comments with optional ?status=.
func AdminListComments(c *gin.Context) {
	p := parsePagination(c)

	query := database.DB.Model(&models.Comment{})
	if status := c.Query("status"); status != "" {
		if !models.ValidContentStatus(models.ContentStatus(status)) {
			respondError(c, http.StatusBadRequest, "Invalid comment status")
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondServerError(c)
		return
	}

	var comments []models.Comment
	if err := query.Preload("User").Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&comments).Error; err != nil {
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"comments":   comments,
		"pagination": pageMeta(p, total),
	})
}

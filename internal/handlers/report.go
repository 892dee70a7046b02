package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/logger"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/utils"
)

var errDuplicateReport = errors.New("duplicate report")

type CreateReportInput struct {
	ReportedUserID *string `json:"reportedUserId"`
	ArtworkID      *string `json:"artworkId"`
	CommentID      *string `json:"commentId"`
	Reason         string  `json:"reason" binding:"required"`
	Description    string  `json:"description"`
}

// CreateReport handles POST /reports. Exactly one target must be
// given; the target must exist and be active, must not belong to the
// reporter, and the reporter must not have an open report against the
// same target already.
func CreateReport(c *gin.Context) {
	reporterID, _ := currentUserID(c)

	var input CreateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	report := models.Report{
		ReporterID:     reporterID,
		ReportedUserID: input.ReportedUserID,
		ArtworkID:      input.ArtworkID,
		CommentID:      input.CommentID,
		Reason:         models.ReportReason(input.Reason),
		Description:    utils.TruncateString(input.Description, 1000),
		Status:         models.ReportPending,
	}

	if report.TargetCount() != 1 {
		respondError(c, http.StatusBadRequest, "Report must reference exactly one of reportedUserId, artworkId, commentId")
		return
	}
	if !models.ValidReportReason(report.Reason) {
		respondError(c, http.StatusBadRequest, "Invalid report reason")
		return
	}

	// Target must exist, be active, and not belong to the reporter.
	switch {
	case report.ReportedUserID != nil:
		if *report.ReportedUserID == reporterID {
			respondError(c, http.StatusBadRequest, "Cannot report yourself")
			return
		}
		var target models.User
		if err := database.DB.First(&target, "id = ? AND is_active = ?", *report.ReportedUserID, true).Error; err != nil {
			respondError(c, http.StatusNotFound, "Reported user not found")
			return
		}
	case report.ArtworkID != nil:
		var target models.Artwork
		if err := database.DB.First(&target, "id = ? AND status = ?", *report.ArtworkID, models.StatusActive).Error; err != nil {
			respondError(c, http.StatusNotFound, "Reported artwork not found")
			return
		}
		if target.ArtistID == reporterID {
			respondError(c, http.StatusBadRequest, "Cannot report your own artwork")
			return
		}
	case report.CommentID != nil:
		var target models.Comment
		if err := database.DB.First(&target, "id = ? AND status = ?", *report.CommentID, models.StatusActive).Error; err != nil {
			respondError(c, http.StatusNotFound, "Reported comment not found")
			return
		}
		if target.UserID == reporterID {
			respondError(c, http.StatusBadRequest, "Cannot report your own comment")
			return
		}
	}

	// One report per (reporter, target), regardless of reason. The
	// check and insert share a transaction, and the composite unique
	// indexes back it up against concurrent submissions.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		dup := tx.Model(&models.Report{}).Where("reporter_id = ?", reporterID)
		switch {
		case report.ReportedUserID != nil:
			dup = dup.Where("reported_user_id = ?", *report.ReportedUserID)
		case report.ArtworkID != nil:
			dup = dup.Where("artwork_id = ?", *report.ArtworkID)
		case report.CommentID != nil:
			dup = dup.Where("comment_id = ?", *report.CommentID)
		}
		var existing int64
		if err := dup.Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return errDuplicateReport
		}
		return tx.Create(&report).Error
	})
	if errors.Is(err, errDuplicateReport) {
		respondError(c, http.StatusBadRequest, "You have already reported this")
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create report")
		respondServerError(c)
		return
	}

	database.DB.Preload("Reporter").First(&report, "id = ?", report.ID)
	respondOK(c, http.StatusCreated, "Report submitted", gin.H{"report": reportWithTarget(report)})
}

// reportWithTarget joins the report with a summary of whatever it
// targets.
func reportWithTarget(report models.Report) gin.H {
	data := gin.H{
		"report":   report,
		"reporter": report.Reporter.Public(),
	}

	switch {
	case report.ReportedUserID != nil:
		var u models.User
		if err := database.DB.First(&u, "id = ?", *report.ReportedUserID).Error; err == nil {
			data["target"] = gin.H{"type": "user", "user": u.Public()}
		}
	case report.ArtworkID != nil:
		var a models.Artwork
		if err := database.DB.First(&a, "id = ?", *report.ArtworkID).Error; err == nil {
			data["target"] = gin.H{"type": "artwork", "artwork": gin.H{
				"id": a.ID, "title": a.Title, "thumbUrl": a.ThumbURL, "artistId": a.ArtistID,
			}}
		}
	case report.CommentID != nil:
		var cm models.Comment
		if err := database.DB.First(&cm, "id = ?", *report.CommentID).Error; err == nil {
			data["target"] = gin.H{"type": "comment", "comment": gin.H{
				"id": cm.ID, "content": utils.TruncateString(cm.Content, 200), "userId": cm.UserID,
			}}
		}
	}
	return data
}

// ListMyReports handles GET /reports for the current user.
func ListMyReports(c *gin.Context) {
	reporterID, _ := currentUserID(c)
	p := parsePagination(c)

	base := database.DB.Model(&models.Report{}).Where("reporter_id = ?", reporterID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		respondServerError(c)
		return
	}

	var reports []models.Report
	if err := base.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&reports).Error; err != nil {
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"reports":    reports,
		"pagination": pageMeta(p, total),
	})
}

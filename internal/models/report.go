package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportReason string

const (
	ReasonSpam          ReportReason = "spam"
	ReasonHarassment    ReportReason = "harassment"
	ReasonInappropriate ReportReason = "inappropriate_content"
	ReasonCopyright     ReportReason = "copyright"
	ReasonOther         ReportReason = "other"
)

func ValidReportReason(r ReportReason) bool {
	switch r {
	case ReasonSpam, ReasonHarassment, ReasonInappropriate, ReasonCopyright, ReasonOther:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportReviewed  ReportStatus = "reviewed"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case ReportPending, ReportReviewed, ReportResolved, ReportDismissed:
		return true
	}
	return false
}

var ErrReportTarget = errors.New("report must reference exactly one target")

// Report flags a user, an artwork, or a comment for moderation.
// Exactly one of the three target columns is set.
type Report struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// One report per reporter per target. NULL target columns stay
	// distinct, so each composite index only binds rows of its kind.
	ReporterID string `gorm:"not null;index:idx_report_user,unique;index:idx_report_artwork,unique;index:idx_report_comment,unique" json:"reporterId"`
	Reporter   User   `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`

	ReportedUserID *string `gorm:"index:idx_report_user,unique" json:"reportedUserId"`
	ArtworkID      *string `gorm:"index:idx_report_artwork,unique" json:"artworkId"`
	CommentID      *string `gorm:"index:idx_report_comment,unique" json:"commentId"`

	Reason      ReportReason `gorm:"type:text;not null" json:"reason"`
	Description string       `gorm:"type:text" json:"description"`

	Status     ReportStatus `gorm:"type:text;default:'pending';index" json:"status"`
	ReviewedBy *string      `json:"reviewedBy"`
	ReviewedAt *time.Time   `json:"reviewedAt"`
}

// TargetCount returns how many of the three target columns are set.
func (r *Report) TargetCount() int {
	n := 0
	if r.ReportedUserID != nil {
		n++
	}
	if r.ArtworkID != nil {
		n++
	}
	if r.CommentID != nil {
		n++
	}
	return n
}

func (r *Report) BeforeCreate(tx *gorm.DB) (err error) {
	if r.TargetCount() != 1 {
		return ErrReportTarget
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

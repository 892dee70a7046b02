package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ContentStatus is shared by artworks and comments. Deletion is always
// a status flip, rows are never removed.
type ContentStatus string

const (
	StatusActive   ContentStatus = "active"
	StatusReported ContentStatus = "reported"
	StatusHidden   ContentStatus = "hidden"
	StatusDeleted  ContentStatus = "deleted"
)

// ValidContentStatus reports whether s is one of the known statuses.
func ValidContentStatus(s ContentStatus) bool {
	switch s {
	case StatusActive, StatusReported, StatusHidden, StatusDeleted:
		return true
	}
	return false
}

type Artwork struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ArtistID string `gorm:"index;not null" json:"artistId"`
	Artist   User   `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`

	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"not null" json:"imageUrl"`
	ThumbURL    string         `json:"thumbUrl"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`

	Status     ContentStatus `gorm:"type:text;default:'active';index" json:"status"`
	IsFeatured bool          `gorm:"default:false" json:"isFeatured"`

	// Denormalized counters, maintained incrementally inside the same
	// transaction as the rows they mirror.
	LikeCount    int `gorm:"default:0" json:"likeCount"`
	CommentCount int `gorm:"default:0" json:"commentCount"`
	ViewCount    int `gorm:"default:0" json:"viewCount"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

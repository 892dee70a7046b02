package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like marks that a user liked an artwork. Row existence is the liked
// state; Artwork.LikeCount mirrors the row count.
type Like struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID    string `gorm:"uniqueIndex:idx_like_user_artwork;not null" json:"userId"`
	ArtworkID string `gorm:"uniqueIndex:idx_like_user_artwork;not null" json:"artworkId"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}

// Favorite bookmarks an artwork for a user. Same shape as Like but no
// counter on the artwork side.
type Favorite struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID    string `gorm:"uniqueIndex:idx_fav_user_artwork;not null" json:"userId"`
	ArtworkID string `gorm:"uniqueIndex:idx_fav_user_artwork;not null" json:"artworkId"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}

var ErrSelfFollow = errors.New("cannot follow yourself")

type Follow struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	FollowerID  string `gorm:"uniqueIndex:idx_follower_following;not null" json:"followerId"`
	Follower    User   `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	FollowingID string `gorm:"uniqueIndex:idx_follower_following;not null" json:"followingId"`
	Following   User   `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}

func (f *Follow) BeforeCreate(tx *gorm.DB) (err error) {
	if f.FollowerID == f.FollowingID {
		return ErrSelfFollow
	}
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}

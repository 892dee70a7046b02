package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleViewer Role = "viewer"
	RoleArtist Role = "artist"
	RoleAdmin  Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleViewer, RoleArtist, RoleAdmin:
		return true
	}
	return false
}

// CanUpload reports whether the role may create artworks.
func (r Role) CanUpload() bool {
	return r == RoleArtist || r == RoleAdmin
}

// CanModerate reports whether the role may act on other users' content.
func (r Role) CanModerate() bool {
	return r == RoleAdmin
}

type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	DisplayName string `json:"displayName"`
	Bio         string `gorm:"type:text" json:"bio"`
	AvatarURL   string `json:"avatarUrl"`

	Role     Role `gorm:"type:text;default:'viewer'" json:"role"`
	IsActive bool `gorm:"default:true" json:"isActive"`

	// Denormalized follow counters, maintained transactionally with
	// the Follow rows.
	FollowerCount  int `gorm:"default:0" json:"followerCount"`
	FollowingCount int `gorm:"default:0" json:"followingCount"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

// PublicProfile is the reduced user shape embedded in list responses
// (artwork cards, comments, report summaries).
type PublicProfile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
	Role        Role   `json:"role"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		Role:        u.Role,
	}
}

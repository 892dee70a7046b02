package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ArtworkID string  `gorm:"index;not null" json:"artworkId"`
	Artwork   Artwork `gorm:"foreignKey:ArtworkID" json:"-"`

	UserID string `gorm:"index;not null" json:"userId"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// ParentID nests a reply under another comment on the same
	// artwork. The schema allows arbitrary depth, the API uses one
	// level.
	ParentID *string `gorm:"index" json:"parentId"`

	Content string        `gorm:"type:text;not null" json:"content"`
	Status  ContentStatus `gorm:"type:text;default:'active';index" json:"status"`

	Replies []Comment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

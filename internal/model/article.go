package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article is a published post. Slug and AuthorID are immutable once the
// record is created; updates only touch title, description and body.
type Article struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Description string    `json:"description" gorm:"size:512;not null"`
	Body        string    `json:"body" gorm:"type:text;not null"`
	AuthorID    uuid.UUID `json:"author_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Author   User      `json:"author" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// OwnerID implements Owned.
func (a *Article) OwnerID() uuid.UUID {
	return a.AuthorID
}

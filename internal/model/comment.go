package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is bound to exactly one article and one author for its whole
// lifetime. Comments are removed together with their article.
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	AuthorID  uuid.UUID `json:"author_id" gorm:"type:char(36);not null;index"`
	ArticleID uuid.UUID `json:"article_id" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Author  User    `json:"author" gorm:"foreignKey:AuthorID"`
	Article Article `json:"-" gorm:"foreignKey:ArticleID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// OwnerID implements Owned.
func (c *Comment) OwnerID() uuid.UUID {
	return c.AuthorID
}

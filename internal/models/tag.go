package models

import (
	"time"
)

type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Number of articles carrying the tag, derived at query time.
	ArticleCount int `gorm:"-" json:"article_count"`
}

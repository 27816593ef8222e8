package models

import (
	"time"
)

type Article struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Slug        string `gorm:"index" json:"slug"` // may be empty on legacy rows
	Title       string `gorm:"not null" json:"title"`
	Content     string `gorm:"type:text" json:"content"`
	Excerpt     string `gorm:"type:text" json:"excerpt"`
	ImageURL    string `json:"image_url"`
	ReadingTime int    `gorm:"default:0" json:"reading_time"` // minutes, 0 = derive from content
	LikesCount  int    `gorm:"default:0" json:"likes_count"`
	ViewsCount  int    `gorm:"default:0" json:"views_count"`
	Published   bool   `gorm:"default:false;index" json:"is_published"`

	// LegacyTags holds the old flat tags column (comma-separated or a
	// JSON-encoded array). It is only a migration source; the join table
	// below is canonical.
	LegacyTags string `gorm:"column:legacy_tags;type:text" json:"-"`

	Tags []Tag `gorm:"many2many:article_tags;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_date"`
	UpdatedAt time.Time `json:"updated_date"`

	// Filled at query time, not stored.
	TagNames []string `gorm:"-" json:"tag_names"`
}

package models

import (
	"time"
)

type Comment struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ArticleID   string    `gorm:"not null;index;size:36" json:"article_id"`
	Article     Article   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AuthorName  string    `gorm:"not null" json:"author_name"`
	AuthorEmail string    `json:"-"` // optional, never rendered publicly
	Content     string    `gorm:"type:text;not null" json:"content"`
	Approved    bool      `gorm:"default:false;index" json:"is_approved"`
	CreatedAt   time.Time `json:"created_date"`
}

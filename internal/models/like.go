package models

import (
	"time"
)

// ArticleLike pairs an article with an anonymous visitor. The composite
// unique index is what makes the like operation idempotent: a second
// insert for the same pair fails instead of double-counting.
type ArticleLike struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ArticleID string    `gorm:"not null;size:36;uniqueIndex:idx_article_visitor" json:"article_id"`
	Article   Article   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	VisitorID string    `gorm:"not null;size:36;uniqueIndex:idx_article_visitor" json:"visitor_id"`
	CreatedAt time.Time `json:"created_date"`
}

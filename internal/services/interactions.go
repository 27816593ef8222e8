package services

import (
	"errors"
	"strings"

	"github.com/dan-gabay/nira-gabay-site/internal/db"
	"github.com/dan-gabay/nira-gabay-site/internal/models"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

// ErrMissingField marks a submission rejected before any write because a
// required field was blank.
var ErrMissingField = errors.New("missing required field")

// Like records a visitor's like on an article. The pairing insert and the
// counter increment run in one transaction; the unique index on
// (article_id, visitor_id) turns a concurrent duplicate into a no-op
// instead of a double count. Returns the current likes count and whether
// the pair already existed.
func Like(articleID, visitorID string) (likes int, already bool, err error) {
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.ArticleLike
		findErr := tx.Where("article_id = ? AND visitor_id = ?", articleID, visitorID).
			First(&existing).Error
		if findErr == nil {
			already = true
			return nil
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		like := models.ArticleLike{
			ID:        uuid.NewString(),
			ArticleID: articleID,
			VisitorID: visitorID,
		}
		if err := tx.Create(&like).Error; err != nil {
			// A concurrent request won the race on the unique index;
			// the counter must not move twice.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				already = true
				return nil
			}
			return err
		}
		return tx.Model(&models.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
	})
	if err != nil {
		return 0, false, err
	}

	var article models.Article
	if err := db.DB.Select("likes_count").First(&article, "id = ?", articleID).Error; err != nil {
		return 0, already, err
	}
	return article.LikesCount, already, nil
}

// RegisterView bumps an article's views counter by one. The per-visitor
// per-day gate lives in the caller's session; this only runs when the
// gate says the visitor has not been counted today.
func RegisterView(articleID string) error {
	return db.DB.Model(&models.Article{}).
		Where("id = ?", articleID).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

// CreateComment stores a visitor comment pending moderation. Author name
// and body are required and checked before anything is written.
func CreateComment(articleID, authorName, authorEmail, content string) (*models.Comment, error) {
	if strings.TrimSpace(authorName) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrMissingField
	}

	comment := models.Comment{
		ID:          uuid.NewString(),
		ArticleID:   articleID,
		AuthorName:  strings.TrimSpace(authorName),
		AuthorEmail: strings.TrimSpace(authorEmail),
		Content:     content,
		Approved:    false,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ApprovedComments lists an article's publicly visible comments, newest
// first.
func ApprovedComments(articleID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.DB.Where("article_id = ? AND approved = ?", articleID, true).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// HasLiked reports whether the visitor already liked the article, so the
// page can render the heart pre-filled.
func HasLiked(articleID, visitorID string) bool {
	var like models.ArticleLike
	err := db.DB.Where("article_id = ? AND visitor_id = ?", articleID, visitorID).
		First(&like).Error
	return err == nil
}

// CreateContactMessage stores a contact-form submission. Name and message
// are required.
func CreateContactMessage(name, email, phone, message string) (*models.ContactMessage, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(message) == "" {
		return nil, ErrMissingField
	}

	msg := models.ContactMessage{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Phone:   strings.TrimSpace(phone),
		Message: message,
	}
	if err := db.DB.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

package services

import (
	"strings"

	"github.com/dan-gabay/nira-gabay-site/internal/db"
	"github.com/dan-gabay/nira-gabay-site/internal/models"
)

const (
	// Excerpts derived from content are cut at this many characters.
	excerptLength = 220
	// Hebrew reading speed assumed by the estimate, characters per minute.
	charsPerMinute = 1000
)

// ListPublished returns every published article, most recently updated
// first (creation date breaks ties, nulls last), with tags preloaded and
// display fields filled in.
func ListPublished() ([]models.Article, error) {
	var articles []models.Article
	err := db.DB.Preload("Tags").
		Where("published = ?", true).
		Order("updated_at DESC NULLS LAST").
		Order("created_at DESC NULLS LAST").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	for i := range articles {
		PrepareForDisplay(&articles[i])
	}
	return articles, nil
}

// FindPublished resolves a route parameter to one published article. The
// slug is tried first; legacy rows without a slug are still reachable by
// identifier. Returns gorm.ErrRecordNotFound when neither matches.
func FindPublished(key string) (*models.Article, error) {
	var article models.Article
	err := db.DB.Preload("Tags").
		Where("published = ? AND slug = ?", true, key).
		First(&article).Error
	if err == nil {
		PrepareForDisplay(&article)
		return &article, nil
	}

	err = db.DB.Preload("Tags").
		Where("published = ? AND id = ?", true, key).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	PrepareForDisplay(&article)
	return &article, nil
}

// FindByID fetches an article regardless of publish state, for the admin
// area. Only tag names are filled in; excerpt and reading time stay as
// stored so the edit form round-trips them untouched.
func FindByID(id string) (*models.Article, error) {
	var article models.Article
	if err := db.DB.Preload("Tags").First(&article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	article.TagNames = TagNames(&article)
	return &article, nil
}

// PrepareForDisplay fills the derived fields: normalized tag names, a
// non-empty excerpt when content allows one, and a reading-time estimate.
func PrepareForDisplay(article *models.Article) {
	article.TagNames = TagNames(article)
	article.Excerpt = Excerpt(article.Excerpt, article.Content)
	article.ReadingTime = ReadingTime(article.ReadingTime, article.Content)
}

// Excerpt returns the explicit excerpt when it has content, otherwise the
// first 220 characters of the body with an ellipsis when truncated. Blank
// content yields a blank excerpt.
func Excerpt(explicit, content string) string {
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		return explicit
	}

	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "…"
}

// ReadingTime returns the explicit estimate when set, otherwise
// ceil(characters/1000) minutes with a floor of one minute.
func ReadingTime(explicit int, content string) int {
	if explicit > 0 {
		return explicit
	}

	chars := len([]rune(content))
	minutes := (chars + charsPerMinute - 1) / charsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// FilterArticles narrows a list by free-text query (title or content) and
// a single tag name. Either filter may be empty.
func FilterArticles(articles []models.Article, query, tag string) []models.Article {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" && tag == "" {
		return articles
	}

	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Title), query) &&
			!strings.Contains(strings.ToLower(a.Content), query) {
			continue
		}
		if tag != "" && !containsTag(a.TagNames, tag) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func containsTag(names []string, tag string) bool {
	for _, n := range names {
		if n == tag {
			return true
		}
	}
	return false
}

package services

import (
	"strings"
	"testing"

	"github.com/dan-gabay/nira-gabay-site/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {
	t.Run("explicit excerpt wins", func(t *testing.T) {
		assert.Equal(t, "תקציר ידני", Excerpt("תקציר ידני", strings.Repeat("א", 500)))
	})

	t.Run("blank explicit excerpt falls back to content", func(t *testing.T) {
		assert.Equal(t, "תוכן קצר", Excerpt("   ", "תוכן קצר"))
	})

	t.Run("long content cut at 220 plus ellipsis", func(t *testing.T) {
		content := strings.Repeat("א", 300)
		got := Excerpt("", content)
		runes := []rune(got)
		assert.Len(t, runes, 221)
		assert.Equal(t, strings.Repeat("א", 220), string(runes[:220]))
		assert.Equal(t, "…", string(runes[220:]))
	})

	t.Run("content at exactly 220 is untouched", func(t *testing.T) {
		content := strings.Repeat("ב", 220)
		assert.Equal(t, content, Excerpt("", content))
	})

	t.Run("blank content yields empty excerpt", func(t *testing.T) {
		assert.Equal(t, "", Excerpt("", ""))
	})
}

func TestReadingTime(t *testing.T) {
	t.Run("explicit value wins", func(t *testing.T) {
		assert.Equal(t, 7, ReadingTime(7, strings.Repeat("א", 10000)))
	})

	t.Run("2500 characters estimate three minutes", func(t *testing.T) {
		assert.Equal(t, 3, ReadingTime(0, strings.Repeat("א", 2500)))
	})

	t.Run("exact multiple", func(t *testing.T) {
		assert.Equal(t, 2, ReadingTime(0, strings.Repeat("א", 2000)))
	})

	t.Run("minimum one minute", func(t *testing.T) {
		assert.Equal(t, 1, ReadingTime(0, "קצר"))
		assert.Equal(t, 1, ReadingTime(0, ""))
	})
}

func TestFilterArticles(t *testing.T) {
	articles := []models.Article{
		{Title: "על חרדה אצל ילדים", Content: "תוכן", TagNames: []string{"הורות", "חרדה"}},
		{Title: "זוגיות בריאה", Content: "על תקשורת זוגית", TagNames: []string{"זוגיות"}},
		{Title: "שינה", Content: "הרגלי שינה אצל ילדים", TagNames: []string{"הורות"}},
	}

	t.Run("no filters returns everything", func(t *testing.T) {
		assert.Len(t, FilterArticles(articles, "", ""), 3)
	})

	t.Run("query matches title", func(t *testing.T) {
		got := FilterArticles(articles, "חרדה", "")
		assert.Len(t, got, 1)
		assert.Equal(t, "על חרדה אצל ילדים", got[0].Title)
	})

	t.Run("query matches content", func(t *testing.T) {
		got := FilterArticles(articles, "תקשורת", "")
		assert.Len(t, got, 1)
	})

	t.Run("tag filter", func(t *testing.T) {
		got := FilterArticles(articles, "", "הורות")
		assert.Len(t, got, 2)
	})

	t.Run("query and tag combined", func(t *testing.T) {
		got := FilterArticles(articles, "ילדים", "הורות")
		assert.Len(t, got, 2)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterArticles(articles, "לא קיים", ""))
	})
}

func TestCommentValidationRejectsBeforeWrite(t *testing.T) {
	// db.DB is nil in unit tests; reaching the storage layer would
	// panic. A missing author name must be rejected before that.
	_, err := CreateComment("article-1", "", "", "תוכן")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = CreateComment("article-1", "דנה", "", "")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestContactValidationRejectsBeforeWrite(t *testing.T) {
	_, err := CreateContactMessage("", "a@b.c", "", "הודעה")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = CreateContactMessage("דנה", "", "", "")
	assert.ErrorIs(t, err, ErrMissingField)
}

package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dan-gabay/nira-gabay-site/internal/db"
	"github.com/dan-gabay/nira-gabay-site/internal/models"
	"github.com/rs/zerolog"

	"gorm.io/gorm"
)

// NormalizeTags reconciles the legacy tag shapes into one ordered list of
// names. The raw value may be nil, a slice, a comma-separated string or a
// string holding a JSON-encoded array. Entries are trimmed, empties are
// dropped and the first occurrence of a name wins.
func NormalizeTags(raw interface{}) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		return dedupeTags(v)
	case []interface{}:
		names := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			names = append(names, fmt.Sprintf("%v", item))
		}
		return dedupeTags(names)
	case string:
		return normalizeTagString(v)
	default:
		return []string{}
	}
}

func normalizeTagString(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	// The value is usually either a JSON array ("[\"a\",\"b\"]") or a
	// plain comma list ("a, b"). A string that decodes to a JSON
	// non-array (a bare number, say) is not a tag list and falls through
	// to comma-splitting of the original.
	var decoded interface{}
	if err := json.Unmarshal([]byte(s), &decoded); err == nil {
		if arr, ok := decoded.([]interface{}); ok {
			return NormalizeTags(arr)
		}
	}

	return dedupeTags(strings.Split(s, ","))
}

func dedupeTags(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// TagNames returns an article's canonical tag names: the join rows when
// present, otherwise whatever the legacy column yields.
func TagNames(article *models.Article) []string {
	if len(article.Tags) > 0 {
		names := make([]string, 0, len(article.Tags))
		for _, t := range article.Tags {
			names = append(names, t.Name)
		}
		return dedupeTags(names)
	}
	return NormalizeTags(article.LegacyTags)
}

// SetArticleTags replaces an article's tag associations with the given
// raw tag value (typically the comma list from the admin form), creating
// missing tag rows on the way.
func SetArticleTags(tx *gorm.DB, article *models.Article, raw interface{}) error {
	names := NormalizeTags(raw)

	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
			tag = models.Tag{Name: name}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		}
		tags = append(tags, tag)
	}

	return tx.Model(article).Association("Tags").Replace(&tags)
}

// TagsWithCounts lists all tags with the number of articles carrying each.
func TagsWithCounts() ([]models.Tag, error) {
	var tags []models.Tag
	if err := db.DB.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}

	type countRow struct {
		TagID uint
		Count int
	}
	var rows []countRow
	if err := db.DB.Table("article_tags").
		Select("tag_id, COUNT(*) as count").
		Group("tag_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.TagID] = r.Count
	}
	for i := range tags {
		tags[i].ArticleCount = counts[tags[i].ID]
	}
	return tags, nil
}

// RenameTag changes a tag's name in place; the join rows follow.
func RenameTag(id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMissingField
	}
	return db.DB.Model(&models.Tag{}).Where("id = ?", id).Update("name", name).Error
}

// DeleteTag removes a tag in two phases inside one transaction: first the
// join rows for every article carrying it, then the tag row itself.
func DeleteTag(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM article_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}

// MigrateLegacyTags folds every non-empty legacy tags column into join
// rows and blanks the column. Safe to run on every boot; already-migrated
// rows have nothing left to do.
func MigrateLegacyTags(log zerolog.Logger) {
	var articles []models.Article
	if err := db.DB.Where("legacy_tags IS NOT NULL AND legacy_tags <> ''").Find(&articles).Error; err != nil {
		log.Error().Err(err).Msg("legacy tag migration: listing articles failed")
		return
	}

	migrated := 0
	for i := range articles {
		article := &articles[i]
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			if err := SetArticleTags(tx, article, article.LegacyTags); err != nil {
				return err
			}
			return tx.Model(article).Update("legacy_tags", "").Error
		})
		if err != nil {
			log.Error().Err(err).Str("article_id", article.ID).Msg("legacy tag migration failed for article")
			continue
		}
		migrated++
	}

	if migrated > 0 {
		log.Info().Int("articles", migrated).Msg("legacy tags migrated to join table")
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dan-gabay/nira-gabay-site/internal/db"
	"github.com/dan-gabay/nira-gabay-site/internal/models"
	"github.com/dan-gabay/nira-gabay-site/internal/services"
	"github.com/dan-gabay/nira-gabay-site/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminHandler serves the /manage area: article CRUD, comment moderation,
// the contact inbox and tag management.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Dashboard shows the queue sizes the admin cares about.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	var articleCount, pendingComments, unreadMessages int64
	db.DB.Model(&models.Article{}).Count(&articleCount)
	db.DB.Model(&models.Comment{}).Where("approved = ?", false).Count(&pendingComments)
	db.DB.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&unreadMessages)

	Render(c, http.StatusOK, "admin/dashboard.html", gin.H{
		"Title":           "ניהול",
		"ArticleCount":    articleCount,
		"PendingComments": pendingComments,
		"UnreadMessages":  unreadMessages,
	})
}

// ---- Articles ----

// ListArticles lists all articles, optionally narrowed by a substring
// search over title and excerpt.
func (h *AdminHandler) ListArticles(c *gin.Context) {
	query := c.Query("q")

	q := db.DB.Preload("Tags").Order("updated_at DESC")
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("title ILIKE ? OR excerpt ILIKE ?", pattern, pattern)
	}

	var articles []models.Article
	if err := q.Find(&articles).Error; err != nil {
		Log.Error().Err(err).Msg("admin: listing articles failed")
		RenderError(c, http.StatusInternalServerError, "טעינת המאמרים נכשלה")
		return
	}
	for i := range articles {
		articles[i].TagNames = services.TagNames(&articles[i])
	}

	Render(c, http.StatusOK, "admin/articles.html", gin.H{
		"Title":    "ניהול מאמרים",
		"Articles": articles,
		"Query":    query,
	})
}

func (h *AdminHandler) ShowNewArticle(c *gin.Context) {
	Render(c, http.StatusOK, "admin/article_form.html", gin.H{
		"Title":   "מאמר חדש",
		"Article": &models.Article{},
	})
}

func (h *AdminHandler) CreateArticle(c *gin.Context) {
	article := models.Article{
		ID:          uuid.NewString(),
		Title:       c.PostForm("title"),
		Slug:        strings.TrimSpace(c.PostForm("slug")),
		Excerpt:     c.PostForm("excerpt"),
		Content:     c.PostForm("content"),
		ImageURL:    c.PostForm("image_url"),
		ReadingTime: utils.StringToInt(c.PostForm("reading_time")),
		Published:   c.PostForm("published") == "on",
	}

	if strings.TrimSpace(article.Title) == "" {
		Render(c, http.StatusBadRequest, "admin/article_form.html", gin.H{
			"Title":   "מאמר חדש",
			"Article": &article,
			"Error":   "כותרת היא שדה חובה",
		})
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&article).Error; err != nil {
			return err
		}
		return services.SetArticleTags(tx, &article, c.PostForm("tags"))
	})
	if err != nil {
		Log.Error().Err(err).Msg("admin: creating article failed")
		Render(c, http.StatusInternalServerError, "admin/article_form.html", gin.H{
			"Title":   "מאמר חדש",
			"Article": &article,
			"Error":   "שמירת המאמר נכשלה",
		})
		return
	}

	utils.GetCache().Purge()
	c.Redirect(http.StatusFound, "/manage/articles")
}

func (h *AdminHandler) ShowEditArticle(c *gin.Context) {
	article, err := services.FindByID(c.Param("id"))
	if err != nil {
		RenderNotFound(c, "המאמר לא נמצא")
		return
	}

	Render(c, http.StatusOK, "admin/article_form.html", gin.H{
		"Title":    "עריכת מאמר",
		"Article":  article,
		"TagsText": strings.Join(article.TagNames, ", "),
	})
}

func (h *AdminHandler) UpdateArticle(c *gin.Context) {
	article, err := services.FindByID(c.Param("id"))
	if err != nil {
		RenderNotFound(c, "המאמר לא נמצא")
		return
	}

	updates := map[string]interface{}{
		"title":        c.PostForm("title"),
		"slug":         strings.TrimSpace(c.PostForm("slug")),
		"excerpt":      c.PostForm("excerpt"),
		"content":      c.PostForm("content"),
		"image_url":    c.PostForm("image_url"),
		"reading_time": utils.StringToInt(c.PostForm("reading_time")),
		"published":    c.PostForm("published") == "on",
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(article).Updates(updates).Error; err != nil {
			return err
		}
		return services.SetArticleTags(tx, article, c.PostForm("tags"))
	})
	if err != nil {
		Log.Error().Err(err).Str("article_id", article.ID).Msg("admin: updating article failed")
		Render(c, http.StatusInternalServerError, "admin/article_form.html", gin.H{
			"Title":   "עריכת מאמר",
			"Article": article,
			"Error":   "שמירת המאמר נכשלה",
		})
		return
	}

	utils.GetCache().Purge()
	c.Redirect(http.StatusFound, "/manage/articles")
}

func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	id := c.Param("id")
	if err := db.DB.Delete(&models.Article{}, "id = ?", id).Error; err != nil {
		Log.Error().Err(err).Str("article_id", id).Msg("admin: deleting article failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	utils.GetCache().Purge()
	c.Header("HX-Refresh", "true")
	c.Status(http.StatusOK)
}

// TogglePublish flips the published flag. Both directions are always
// allowed.
func (h *AdminHandler) TogglePublish(c *gin.Context) {
	var article models.Article
	if err := db.DB.First(&article, "id = ?", c.Param("id")).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	article.Published = !article.Published
	if err := db.DB.Model(&article).Update("published", article.Published).Error; err != nil {
		Log.Error().Err(err).Str("article_id", article.ID).Msg("admin: toggling publish failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	utils.GetCache().Purge()
	label := "פרסום"
	if article.Published {
		label = "הסרה מפרסום"
	}
	c.String(http.StatusOK, label)
}

// ---- Comments ----

// ListComments shows the moderation queue, pending first.
func (h *AdminHandler) ListComments(c *gin.Context) {
	var comments []models.Comment
	err := db.DB.Preload("Article").
		Order("approved ASC").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		Log.Error().Err(err).Msg("admin: listing comments failed")
		RenderError(c, http.StatusInternalServerError, "טעינת התגובות נכשלה")
		return
	}

	Render(c, http.StatusOK, "admin/comments.html", gin.H{
		"Title":    "ניהול תגובות",
		"Comments": comments,
	})
}

// ToggleCommentApproval flips a comment between pending and approved.
func (h *AdminHandler) ToggleCommentApproval(c *gin.Context) {
	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", c.Param("id")).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	comment.Approved = !comment.Approved
	if err := db.DB.Model(&comment).Update("approved", comment.Approved).Error; err != nil {
		Log.Error().Err(err).Str("comment_id", comment.ID).Msg("admin: toggling comment approval failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	label := "אישור"
	if comment.Approved {
		label = "ביטול אישור"
	}
	c.String(http.StatusOK, label)
}

func (h *AdminHandler) DeleteComment(c *gin.Context) {
	if err := db.DB.Delete(&models.Comment{}, "id = ?", c.Param("id")).Error; err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("HX-Refresh", "true")
	c.Status(http.StatusOK)
}

// ---- Contact messages ----

func (h *AdminHandler) ListContacts(c *gin.Context) {
	var messages []models.ContactMessage
	if err := db.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		Log.Error().Err(err).Msg("admin: listing contact messages failed")
		RenderError(c, http.StatusInternalServerError, "טעינת הפניות נכשלה")
		return
	}

	Render(c, http.StatusOK, "admin/contacts.html", gin.H{
		"Title":    "פניות",
		"Messages": messages,
	})
}

func (h *AdminHandler) ToggleContactRead(c *gin.Context) {
	var msg models.ContactMessage
	if err := db.DB.First(&msg, "id = ?", c.Param("id")).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	msg.Read = !msg.Read
	if err := db.DB.Model(&msg).Update("is_read", msg.Read).Error; err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	label := "סימון כנקראה"
	if msg.Read {
		label = "סימון כלא נקראה"
	}
	c.String(http.StatusOK, label)
}

func (h *AdminHandler) DeleteContact(c *gin.Context) {
	if err := db.DB.Delete(&models.ContactMessage{}, "id = ?", c.Param("id")).Error; err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("HX-Refresh", "true")
	c.Status(http.StatusOK)
}

// ---- Tags ----

func (h *AdminHandler) ListTags(c *gin.Context) {
	tags, err := services.TagsWithCounts()
	if err != nil {
		Log.Error().Err(err).Msg("admin: listing tags failed")
		RenderError(c, http.StatusInternalServerError, "טעינת התגיות נכשלה")
		return
	}

	Render(c, http.StatusOK, "admin/tags.html", gin.H{
		"Title": "ניהול תגיות",
		"Tags":  tags,
	})
}

func (h *AdminHandler) CreateTag(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.Redirect(http.StatusFound, "/manage/tags")
		return
	}

	if err := db.DB.Create(&models.Tag{Name: name}).Error; err != nil {
		// A duplicate name is a quiet no-op; the tag already exists.
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			Log.Error().Err(err).Str("tag", name).Msg("admin: creating tag failed")
		}
	}
	c.Redirect(http.StatusFound, "/manage/tags")
}

func (h *AdminHandler) RenameTag(c *gin.Context) {
	id := uint(utils.StringToInt(c.Param("id")))
	if err := services.RenameTag(id, c.PostForm("name")); err != nil {
		if err != services.ErrMissingField {
			Log.Error().Err(err).Uint("tag_id", id).Msg("admin: renaming tag failed")
		}
	}
	utils.GetCache().Purge()
	c.Redirect(http.StatusFound, "/manage/tags")
}

// DeleteTag detaches the tag from every article before removing the tag
// row itself, all in one transaction.
func (h *AdminHandler) DeleteTag(c *gin.Context) {
	id := uint(utils.StringToInt(c.Param("id")))
	if err := services.DeleteTag(id); err != nil {
		Log.Error().Err(err).Uint("tag_id", id).Msg("admin: deleting tag failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	utils.GetCache().Purge()
	c.Header("HX-Refresh", "true")
	c.Status(http.StatusOK)
}

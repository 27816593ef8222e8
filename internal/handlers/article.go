package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dan-gabay/nira-gabay-site/internal/middleware"
	"github.com/dan-gabay/nira-gabay-site/internal/models"
	"github.com/dan-gabay/nira-gabay-site/internal/services"
	"github.com/dan-gabay/nira-gabay-site/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArticleHandler struct{}

func NewArticleHandler() *ArticleHandler {
	return &ArticleHandler{}
}

// List renders the public articles page. Search and tag filtering are
// evaluated over the published set in-process.
func (h *ArticleHandler) List(c *gin.Context) {
	query := c.Query("q")
	tag := c.Query("tag")

	articles, err := services.ListPublished()
	if err != nil {
		Log.Error().Err(err).Msg("articles: list failed")
		RenderError(c, http.StatusInternalServerError, "טעינת המאמרים נכשלה, נסו שוב")
		return
	}

	filtered := services.FilterArticles(articles, query, tag)

	tags, err := services.TagsWithCounts()
	if err != nil {
		Log.Error().Err(err).Msg("articles: loading tags failed")
		tags = []models.Tag{}
	}

	Render(c, http.StatusOK, "articles/list.html", gin.H{
		"Title":       "מאמרים",
		"Articles":    filtered,
		"Tags":        tags,
		"Query":       query,
		"SelectedTag": tag,
	})
}

// Detail renders a single article, resolved by slug with identifier
// fallback. The views counter moves at most once per visitor per day.
func (h *ArticleHandler) Detail(c *gin.Context) {
	key := c.Param("slug")

	article, err := services.FindPublished(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RenderNotFound(c, "המאמר המבוקש לא נמצא")
			return
		}
		Log.Error().Err(err).Str("key", key).Msg("article: lookup failed")
		RenderError(c, http.StatusInternalServerError, "טעינת המאמר נכשלה, נסו שוב")
		return
	}

	if !middleware.ViewCountedToday(c, article.ID) {
		if err := services.RegisterView(article.ID); err != nil {
			// Marker stays unset so the next request retries the count.
			Log.Error().Err(err).Str("article_id", article.ID).Msg("article: view increment failed")
		} else {
			middleware.MarkViewCounted(c, article.ID)
			article.ViewsCount++
		}
	}

	Render(c, http.StatusOK, "articles/detail.html", h.detailData(c, article))
}

func (h *ArticleHandler) detailData(c *gin.Context, article *models.Article) gin.H {
	comments, err := services.ApprovedComments(article.ID)
	if err != nil {
		Log.Error().Err(err).Str("article_id", article.ID).Msg("article: loading comments failed")
		comments = []models.Comment{}
	}

	return gin.H{
		"Title":    article.Title,
		"Article":  article,
		"Content":  utils.RenderMarkdown(article.Content),
		"Comments": comments,
		"HasLiked": services.HasLiked(article.ID, middleware.VisitorID(c)),
	}
}

// Like records a one-per-visitor like and answers with the fresh count,
// for an HTMX-style swap on the heart button.
func (h *ArticleHandler) Like(c *gin.Context) {
	key := c.Param("slug")

	article, err := services.FindPublished(key)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	likes, _, err := services.Like(article.ID, middleware.VisitorID(c))
	if err != nil {
		Log.Error().Err(err).Str("article_id", article.ID).Msg("article: like failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	utils.GetCache().Delete("page:home")
	c.String(http.StatusOK, fmt.Sprintf("%d", likes))
}

// CreateComment stores a visitor comment for moderation. Missing required
// fields are rejected before any write and surfaced inline.
func (h *ArticleHandler) CreateComment(c *gin.Context) {
	key := c.Param("slug")

	article, err := services.FindPublished(key)
	if err != nil {
		RenderNotFound(c, "המאמר המבוקש לא נמצא")
		return
	}

	authorName := c.PostForm("author_name")
	authorEmail := c.PostForm("author_email")
	content := c.PostForm("content")

	_, err = services.CreateComment(article.ID, authorName, authorEmail, content)
	if err == services.ErrMissingField {
		data := h.detailData(c, article)
		data["CommentError"] = "נא למלא שם ותוכן התגובה"
		Render(c, http.StatusBadRequest, "articles/detail.html", data)
		return
	}
	if err != nil {
		Log.Error().Err(err).Str("article_id", article.ID).Msg("article: saving comment failed")
		data := h.detailData(c, article)
		data["CommentError"] = "משהו השתבש, נסו שוב"
		Render(c, http.StatusInternalServerError, "articles/detail.html", data)
		return
	}

	data := h.detailData(c, article)
	data["CommentSuccess"] = "התגובה התקבלה ותוצג לאחר אישור"
	Render(c, http.StatusOK, "articles/detail.html", data)
}

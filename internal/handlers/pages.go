package handlers

import (
	"net/http"
	"time"

	"github.com/dan-gabay/nira-gabay-site/internal/models"
	"github.com/dan-gabay/nira-gabay-site/internal/services"
	"github.com/dan-gabay/nira-gabay-site/internal/utils"

	"github.com/gin-gonic/gin"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home renders the landing page with a short articles preview. Only the
// articles slice is cached, never the render map: Render writes
// per-request keys into its map, so sharing one map between concurrent
// cache hits would be a concurrent map write.
func (h *PageHandler) Home(c *gin.Context) {
	cacheKey := "page:home"
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if articles, ok := cached.([]models.Article); ok {
			Render(c, http.StatusOK, "home.html", homeData(articles))
			return
		}
	}

	articles, err := services.ListPublished()
	if err != nil {
		Log.Error().Err(err).Msg("home: loading articles failed")
		articles = []models.Article{}
	}
	if len(articles) > 3 {
		articles = articles[:3]
	}

	utils.GetCache().Set(cacheKey, articles, 5*time.Minute)

	Render(c, http.StatusOK, "home.html", homeData(articles))
}

func homeData(articles []models.Article) gin.H {
	return gin.H{
		"Title":    "נירה גבאי - פסיכותרפיה",
		"Articles": articles,
	}
}

func (h *PageHandler) About(c *gin.Context) {
	Render(c, http.StatusOK, "about.html", gin.H{
		"Title": "אודות",
	})
}

func (h *PageHandler) ShowContact(c *gin.Context) {
	Render(c, http.StatusOK, "contact.html", gin.H{
		"Title": "יצירת קשר",
	})
}

// SubmitContact stores a contact-form message. Validation failures come
// back inline, before anything is written.
func (h *PageHandler) SubmitContact(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	phone := c.PostForm("phone")
	message := c.PostForm("message")

	_, err := services.CreateContactMessage(name, email, phone, message)
	if err == services.ErrMissingField {
		Render(c, http.StatusBadRequest, "contact.html", gin.H{
			"Title": "יצירת קשר",
			"Error": "נא למלא שם והודעה",
			"Name":  name,
			"Email": email,
			"Phone": phone,
			"Msg":   message,
		})
		return
	}
	if err != nil {
		Log.Error().Err(err).Msg("contact: saving message failed")
		Render(c, http.StatusInternalServerError, "contact.html", gin.H{
			"Title": "יצירת קשר",
			"Error": "משהו השתבש, נסו שוב",
			"Name":  name,
			"Email": email,
			"Phone": phone,
			"Msg":   message,
		})
		return
	}

	Render(c, http.StatusOK, "contact.html", gin.H{
		"Title":   "יצירת קשר",
		"Success": "ההודעה נשלחה, ניצור קשר בהקדם",
	})
}

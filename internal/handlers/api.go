package handlers

import (
	"net/http"

	"github.com/dan-gabay/nira-gabay-site/internal/services"

	"github.com/gin-gonic/gin"
)

type APIHandler struct{}

func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Articles answers GET /api/articles. Without a slug parameter it returns
// the full published list; with one, the single matching article or a 404
// envelope.
func (h *APIHandler) Articles(c *gin.Context) {
	articles, err := services.ListPublished()
	if err != nil {
		Log.Error().Err(err).Msg("api: listing articles failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": apiError{Message: "Internal error", Code: "internal_error"},
		})
		return
	}

	slug := c.Query("slug")
	if slug == "" {
		c.JSON(http.StatusOK, gin.H{"data": articles})
		return
	}

	for i := range articles {
		if articles[i].Slug == slug {
			c.JSON(http.StatusOK, gin.H{"data": articles[i]})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{
		"error": apiError{Message: "Not found", Code: "not_found"},
	})
}

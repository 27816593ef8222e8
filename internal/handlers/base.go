package handlers

import (
	"github.com/dan-gabay/nira-gabay-site/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Log is the handler-level logger, set once from main.
var Log zerolog.Logger

// Render injects the variables every template expects before rendering.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	obj["CurrentPath"] = c.Request.URL.Path
	obj["VisitorID"] = middleware.VisitorID(c)

	c.HTML(code, name, obj)
}

// RenderError shows the friendly in-page error view. Raw error details
// never reach it; callers log those.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message, "Title": "שגיאה"})
}

// RenderNotFound is the 404-equivalent page state.
func RenderNotFound(c *gin.Context, message string) {
	RenderError(c, 404, message)
}

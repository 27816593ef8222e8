package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoIndex keeps the management area out of search engines.
func NoIndex() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Robots-Tag", "noindex, nofollow")
		c.Next()
	}
}

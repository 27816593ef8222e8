package handlers

import (
	"fmt"
	"net/http"

	"github.com/dan-gabay/nira-gabay-site/internal/config"
	"github.com/dan-gabay/nira-gabay-site/internal/services"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct {
	cfg *config.Config
}

func NewSEOHandler(cfg *config.Config) *SEOHandler {
	return &SEOHandler{cfg: cfg}
}

// Robots serves robots.txt. The management area is kept out of indexes;
// everything public is allowed.
func (h *SEOHandler) Robots(c *gin.Context) {
	body := fmt.Sprintf(`User-agent: *
Allow: /
Disallow: /manage

Sitemap: %s/sitemap.xml
`, h.cfg.SiteURL)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, body)
}

// Sitemap lists the public routes and published articles.
func (h *SEOHandler) Sitemap(c *gin.Context) {
	urls := []string{
		h.cfg.SiteURL + "/",
		h.cfg.SiteURL + "/about",
		h.cfg.SiteURL + "/articles",
		h.cfg.SiteURL + "/contact",
	}

	articles, err := services.ListPublished()
	if err == nil {
		for _, a := range articles {
			key := a.Slug
			if key == "" {
				key = a.ID
			}
			urls = append(urls, h.cfg.SiteURL+"/articles/"+key)
		}
	}

	var body string
	body += `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	body += `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n"
	for _, u := range urls {
		body += fmt.Sprintf("  <url><loc>%s</loc></url>\n", u)
	}
	body += `</urlset>`

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, body)
}

package router

import (
	"github.com/dan-gabay/nira-gabay-site/internal/config"
	"github.com/dan-gabay/nira-gabay-site/internal/handlers"
	"github.com/dan-gabay/nira-gabay-site/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	pageHandler := handlers.NewPageHandler()
	articleHandler := handlers.NewArticleHandler()
	apiHandler := handlers.NewAPIHandler()
	adminHandler := handlers.NewAdminHandler()
	seoHandler := handlers.NewSEOHandler(cfg)

	// Public pages
	r.GET("/", pageHandler.Home)
	r.GET("/about", pageHandler.About)
	r.GET("/contact", pageHandler.ShowContact)
	r.POST("/contact", pageHandler.SubmitContact)

	r.GET("/articles", articleHandler.List)
	r.GET("/articles/:slug", articleHandler.Detail) // slug, with ID fallback
	r.POST("/articles/:slug/like", articleHandler.Like)
	r.POST("/articles/:slug/comments", articleHandler.CreateComment)

	// JSON read endpoint
	r.GET("/api/articles", apiHandler.Articles)

	// SEO plumbing
	r.GET("/robots.txt", seoHandler.Robots)
	r.GET("/sitemap.xml", seoHandler.Sitemap)

	// Management area. No authentication by design; kept out of search
	// indexes instead.
	manage := r.Group("/manage")
	manage.Use(middleware.NoIndex())
	{
		manage.GET("", adminHandler.Dashboard)

		manage.GET("/articles", adminHandler.ListArticles)
		manage.GET("/articles/new", adminHandler.ShowNewArticle)
		manage.POST("/articles/new", adminHandler.CreateArticle)
		manage.GET("/articles/edit/:id", adminHandler.ShowEditArticle)
		manage.POST("/articles/edit/:id", adminHandler.UpdateArticle)
		manage.DELETE("/articles/:id", adminHandler.DeleteArticle)
		manage.POST("/articles/publish/:id", adminHandler.TogglePublish)

		manage.GET("/comments", adminHandler.ListComments)
		manage.POST("/comments/:id/approve", adminHandler.ToggleCommentApproval)
		manage.DELETE("/comments/:id", adminHandler.DeleteComment)

		manage.GET("/contacts", adminHandler.ListContacts)
		manage.POST("/contacts/:id/read", adminHandler.ToggleContactRead)
		manage.DELETE("/contacts/:id", adminHandler.DeleteContact)

		manage.GET("/tags", adminHandler.ListTags)
		manage.POST("/tags", adminHandler.CreateTag)
		manage.POST("/tags/:id/rename", adminHandler.RenameTag)
		manage.DELETE("/tags/:id", adminHandler.DeleteTag)
	}
}

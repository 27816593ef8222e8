package main

import (
	"github.com/dan-gabay/nira-gabay-site/internal/config"
	"github.com/dan-gabay/nira-gabay-site/internal/db"
	"github.com/dan-gabay/nira-gabay-site/internal/handlers"
	"github.com/dan-gabay/nira-gabay-site/internal/middleware"
	"github.com/dan-gabay/nira-gabay-site/internal/router"
	"github.com/dan-gabay/nira-gabay-site/internal/services"
	"github.com/dan-gabay/nira-gabay-site/pkg/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	dotenvErr := godotenv.Load()

	log := logger.New()
	handlers.Log = log
	if dotenvErr != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	cfg := config.Load()

	// Initialize database and fold any legacy flat tag columns into the
	// join table.
	db.Init(cfg.DatabaseURL, log)
	services.MigrateLegacyTags(log)

	r := gin.Default()

	// Cookie sessions carry only client-held state: the anonymous
	// visitor identifier and per-article last-viewed-day markers.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("ng_session", store))

	r.HTMLRender = router.LoadTemplates("./web/templates")

	r.Static("/static", "./web/static")

	r.Use(middleware.LoadVisitor())

	router.RegisterRoutes(r, cfg)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

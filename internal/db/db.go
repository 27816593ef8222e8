package db

import (
	"github.com/dan-gabay/nira-gabay-site/internal/models"
	"github.com/rs/zerolog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string, log zerolog.Logger) {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	log.Info().Msg("database connection established")

	err = DB.AutoMigrate(
		&models.Article{},
		&models.Tag{},
		&models.Comment{},
		&models.ArticleLike{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	log.Info().Msg("database migration completed")

	seedTags(log)
}

// seedTags creates the practice's starter tag set on an empty database.
func seedTags(log zerolog.Logger) {
	var count int64
	DB.Model(&models.Tag{}).Count(&count)
	if count > 0 {
		return
	}

	tags := []models.Tag{
		{Name: "הורות"},
		{Name: "זוגיות"},
		{Name: "חרדה"},
		{Name: "טיפול רגשי"},
	}

	for _, tag := range tags {
		if err := DB.Create(&tag).Error; err != nil {
			log.Error().Err(err).Str("tag", tag.Name).Msg("failed to seed tag")
		}
	}
	log.Info().Msg("initial tags created")
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/dan-gabay/nira-gabay-site/internal/db"
	"github.com/dan-gabay/nira-gabay-site/internal/models"
	"github.com/google/uuid"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupAPITest(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping API tests")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Article{}, &models.Tag{}))
	db.DB = conn

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/articles", NewAPIHandler().Articles)
	return r
}

func TestAPIArticlesEnvelope(t *testing.T) {
	r := setupAPITest(t)

	slug := "api-test-" + uuid.NewString()[:8]
	article := &models.Article{
		ID:        uuid.NewString(),
		Slug:      slug,
		Title:     "מאמר API",
		Content:   "תוכן",
		Published: true,
	}
	require.NoError(t, db.DB.Create(article).Error)
	t.Cleanup(func() { db.DB.Delete(&models.Article{}, "id = ?", article.ID) })

	t.Run("list returns data array", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/articles", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data []models.Article `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Data)
	})

	t.Run("slug returns single article", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/articles?slug="+slug, nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data models.Article `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, article.ID, body.Data.ID)
	})

	t.Run("unknown slug returns not_found envelope", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/articles?slug=missing-"+uuid.NewString(), nil))
		require.Equal(t, http.StatusNotFound, w.Code)

		var body struct {
			Error struct {
				Message string `json:"message"`
				Code    string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "not_found", body.Error.Code)
		assert.Equal(t, "Not found", body.Error.Message)
	})
}

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dan-gabay/nira-gabay-site/internal/handlers"
	"github.com/dan-gabay/nira-gabay-site/internal/middleware"
	"github.com/dan-gabay/nira-gabay-site/internal/models"
	"github.com/dan-gabay/nira-gabay-site/internal/router"
	"github.com/dan-gabay/nira-gabay-site/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newPageEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("test_session", store))
	r.Use(middleware.LoadVisitor())
	r.HTMLRender = router.LoadTemplates("../../web/templates")
	return r
}

// The landing page serves one cached articles slice to every visitor at
// once. Each render must build its own data map; request-scoped values
// written into a shared cached map would race under concurrent hits.
func TestHomeServesCachedArticlesConcurrently(t *testing.T) {
	r := newPageEngine()
	r.GET("/", handlers.NewPageHandler().Home)

	articles := []models.Article{
		{ID: "a1", Slug: "emotion-focused", Title: "מאמר ראשון", Excerpt: "תקציר קצר", ReadingTime: 2, CreatedAt: time.Now()},
		{ID: "a2", Title: "מאמר שני", ReadingTime: 1, CreatedAt: time.Now()},
	}
	utils.GetCache().Set("page:home", articles, time.Minute)
	defer utils.GetCache().Delete("page:home")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != http.StatusOK {
				t.Errorf("concurrent home request: status = %d", w.Code)
			}
		}()
	}
	wg.Wait()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "מאמר ראשון")
	assert.Contains(t, w.Body.String(), "/articles/emotion-focused")
}

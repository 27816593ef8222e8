package middleware

import (
	"encoding/gob"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const VisitorKey = "visitor_id"

// viewedKey holds a map of article ID to the last day the visitor was
// counted, stored as a single session value so stale entries can be
// pruned on every write.
const viewedKey = "viewed"

func init() {
	gob.Register(map[string]string{})
}

// LoadVisitor guarantees every request carries an anonymous visitor
// identifier. The UUID lives only in the visitor's cookie session; the
// server keeps no record of it outside the like pairings.
func LoadVisitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		visitorID, _ := session.Get(VisitorKey).(string)

		if visitorID == "" {
			visitorID = uuid.NewString()
			session.Set(VisitorKey, visitorID)
			// A failed save still leaves a usable ID for this request;
			// dedup just won't survive the session.
			_ = session.Save()
		}

		c.Set(VisitorKey, visitorID)
		c.Next()
	}
}

// VisitorID returns the identifier LoadVisitor put on the context.
func VisitorID(c *gin.Context) string {
	if v, exists := c.Get(VisitorKey); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ViewCountedToday reports whether this visitor's view of the article
// was already counted today. Calendar-day granularity: repeat views on
// the same day do not count again.
func ViewCountedToday(c *gin.Context, articleID string) bool {
	session := sessions.Default(c)
	return viewedMarkers(session)[articleID] == today()
}

// MarkViewCounted records that today's view was counted. Callers invoke
// it only after the counter actually moved, so a failed increment
// leaves the marker unset and the next request retries. Markers from
// earlier days are dropped on every write to keep the cookie small.
func MarkViewCounted(c *gin.Context, articleID string) {
	markViewCounted(c, articleID, today())
}

func markViewCounted(c *gin.Context, articleID, day string) {
	session := sessions.Default(c)
	markers := viewedMarkers(session)

	current := today()
	pruned := make(map[string]string, len(markers)+1)
	for id, d := range markers {
		if d == current {
			pruned[id] = d
		}
	}
	pruned[articleID] = day

	session.Set(viewedKey, pruned)
	_ = session.Save()
}

func viewedMarkers(session sessions.Session) map[string]string {
	if m, ok := session.Get(viewedKey).(map[string]string); ok {
		return m
	}
	return map[string]string{}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

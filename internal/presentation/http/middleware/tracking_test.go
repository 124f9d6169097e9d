package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pearlatelier/pearlsite-go/internal/application/services"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
	persistence "github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/analytics"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTracking(t *testing.T) (*gin.Engine, *persistence.SQLPageViewRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		DefaultLevel:  slog.LevelError,
		ChannelLevels: map[logging.Channel]slog.Level{},
	})
	require.NoError(t, err)

	db, err := database.NewConnection("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.NewTableCreator().CreateSchema(db.DB))

	views := persistence.NewSQLPageViewRepository(db)
	svc := services.NewAnalyticsService(logger, performance.NewTracker(100), views)

	router := gin.New()
	router.Use(TrackVisits(svc, logger))
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.GET("/", ok)
	router.GET("/gallery", ok)
	router.GET("/api/jewelry", ok)
	router.GET("/api/health", ok)
	router.GET("/uploads/:name", ok)
	return router, views
}

func get(router *gin.Engine, path string, consented bool) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if consented {
		req.AddCookie(&http.Cookie{Name: ConsentCookie, Value: ConsentAccept})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
}

// A single page render triggers API and asset fetches; only the page
// load itself is a page view.
func TestOnlyPageLoadsAreTracked(t *testing.T) {
	router, views := setupTracking(t)

	get(router, "/gallery", true)
	get(router, "/api/jewelry", true)
	get(router, "/api/health", true)
	get(router, "/uploads/photo.jpg", true)

	// Recording is fire-and-forget, so wait for the page view to land.
	require.Eventually(t, func() bool {
		count, err := views.CountTotal()
		return err == nil && count >= 1
	}, 2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	count, err := views.CountTotal()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	top, err := views.TopPages(5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "/gallery", top[0].Path)
}

func TestNothingTrackedWithoutConsent(t *testing.T) {
	router, views := setupTracking(t)

	get(router, "/", false)
	get(router, "/gallery", false)

	time.Sleep(50 * time.Millisecond)
	count, err := views.CountTotal()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

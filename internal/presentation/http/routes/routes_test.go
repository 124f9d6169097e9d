package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pearlatelier/pearlsite-go/internal/application/container"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
	"github.com/pearlatelier/pearlsite-go/internal/presentation/http/middleware"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		DefaultLevel:  slog.LevelError,
		ChannelLevels: map[logging.Channel]slog.Level{},
	})
	require.NoError(t, err)

	// cache=shared so every pooled connection sees the same in-memory DB.
	db, err := database.NewConnection("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	creator := database.NewTableCreator()
	require.NoError(t, creator.CreateSchema(db.DB))
	require.NoError(t, creator.SeedInitialContent(db.DB))

	deps := container.New(db, logger, performance.NewTracker(100))

	router := gin.New()
	Setup(router, deps)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func loginAsAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": config.DefaultAdminUser,
		"password": config.DefaultAdminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, config.SiteName+" API running", body["message"])
}

func TestLogin(t *testing.T) {
	router := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": config.DefaultAdminUser,
			"password": config.DefaultAdminPassword,
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.NotEmpty(t, body["token"])
		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, config.DefaultAdminUser, user["username"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": config.DefaultAdminUser,
			"password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/images", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization required", decode(t, w)["error"])

	w = doJSON(t, router, http.MethodGet, "/api/images", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", decode(t, w)["error"])

	token := loginAsAdmin(t, router)
	w = doJSON(t, router, http.MethodGet, "/api/images", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChangePassword(t *testing.T) {
	router := newTestServer(t)
	token := loginAsAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/auth/change-password", token, gin.H{
		"oldPassword": "wrong",
		"newPassword": "long-enough",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/change-password", token, gin.H{
		"oldPassword": config.DefaultAdminPassword,
		"newPassword": "long-enough",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": config.DefaultAdminUser,
		"password": "long-enough",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJewelryLifecycle(t *testing.T) {
	router := newTestServer(t)
	token := loginAsAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/jewelry", token, gin.H{
		"name":     "月光珍珠项链",
		"name_en":  "Moonlight Pearl Necklace",
		"category": "necklaces",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	id := int64(created["id"].(float64))
	assert.Equal(t, true, created["is_visible"], "new items default to visible")

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/jewelry/%d", id), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "月光珍珠项链", decode(t, w)["name"])

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/jewelry/%d", id), token, gin.H{
		"name":        "月光项链",
		"is_featured": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	assert.Equal(t, "月光项链", updated["name"])
	assert.Equal(t, true, updated["is_featured"])

	w = doJSON(t, router, http.MethodGet, "/api/jewelry?featured=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/jewelry/%d", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/jewelry/%d", id), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJewelryPagination(t *testing.T) {
	router := newTestServer(t)
	token := loginAsAdmin(t, router)

	for i := 0; i < 12; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/jewelry", token, gin.H{
			"name":        fmt.Sprintf("item-%02d", i),
			"order_index": i,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/jewelry?page=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(12), body["total"])
	assert.Equal(t, float64(2), body["pages"])
	assert.Equal(t, float64(2), body["page"])
	items := body["items"].([]any)
	assert.Len(t, items, 2, "second page holds the remainder")
}

func TestTrackHonorsConsent(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/analytics/track", "", gin.H{
		"path": "/gallery", "visitor_id": "v_test",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["success"], "no consent cookie, nothing recorded")

	req := httptest.NewRequest(http.MethodPost, "/api/analytics/track",
		strings.NewReader(`{"path":"/gallery","visitor_id":"v_test"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.ConsentCookie, Value: middleware.ConsentAccept})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])

	token := loginAsAdmin(t, router)
	w = doJSON(t, router, http.MethodGet, "/api/analytics/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)
	assert.Equal(t, float64(1), stats["todayPV"])
	assert.Equal(t, float64(1), stats["todayUV"])
	assert.Contains(t, stats, "topPages")
	assert.Contains(t, stats, "dailyStats")
}

func TestConsentEndpoint(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/analytics/consent", "", gin.H{"consent": "maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/analytics/consent", "", gin.H{"consent": "accepted"})
	require.Equal(t, http.StatusOK, w.Code)

	var consentCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.ConsentCookie {
			consentCookie = cookie
		}
	}
	require.NotNil(t, consentCookie)
	assert.Equal(t, middleware.ConsentAccept, consentCookie.Value)
}

func TestPageContentRoundTrip(t *testing.T) {
	router := newTestServer(t)
	token := loginAsAdmin(t, router)

	w := doJSON(t, router, http.MethodPut, "/api/pages/about", token, gin.H{
		"title": "关于我们", "title_en": "About Us",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/pages/about", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "关于我们", body["title"])
	assert.Equal(t, "About Us", body["title_en"])
}

func TestPlaceholderSVG(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/placeholder/pearl.jpg", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "image/svg+xml")
	assert.Contains(t, w.Body.String(), "珍珠饰品")
}

func TestPublicPagesRender(t *testing.T) {
	router := newTestServer(t)

	for _, path := range []string{"/", "/gallery", "/about", "/knowledge", "/contact"} {
		w := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html", path)
	}

	w := doJSON(t, router, http.MethodGet, "/?lang=en", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<html lang=\"en\"")
}

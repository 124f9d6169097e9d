package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pearlatelier/pearlsite-go/internal/application/services"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/security"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
)

// Consent cookie values. Anything else counts as unset.
const (
	ConsentCookie = "cookieConsent"
	VisitorCookie = "visitorId"
	ConsentAccept = "accepted"
	ConsentReject = "rejected"
	consentMaxAge = int(365 * 24 * time.Hour / time.Second)
	visitorMaxAge = int(2 * 365 * 24 * time.Hour / time.Second)
)

// TrackVisits records a page view for public page loads when the
// visitor has accepted cookies. Recording is fire-and-forget: a
// failure is logged and never affects the response. Admin surfaces are
// excluded entirely.
func TrackVisits(analyticsService *services.AnalyticsService, logger *logging.ChanneledLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.TrackingEnabled && trackable(c) {
			visitorID := ensureVisitorID(c)
			path := c.Request.URL.Path
			ip := c.ClientIP()
			ua := c.Request.UserAgent()
			referrer := c.Request.Referer()

			go func() {
				if err := analyticsService.Track(path, visitorID, ip, ua, referrer); err != nil {
					logger.Analytics().Warn("Visit tracking failed", "path", path, "error", err.Error())
				}
			}()
		}
		c.Next()
	}
}

// Consent reads the tri-state consent cookie: accepted, rejected or ""
// when the visitor has not chosen yet.
func Consent(c *gin.Context) string {
	value, err := c.Cookie(ConsentCookie)
	if err != nil {
		return ""
	}
	if value != ConsentAccept && value != ConsentReject {
		return ""
	}
	return value
}

// SetConsent persists a consent choice for a year.
func SetConsent(c *gin.Context, value string) {
	c.SetCookie(ConsentCookie, value, consentMaxAge, "/", "", false, false)
}

// trackedPages are the server-rendered public routes. API calls and
// asset fetches are not page views.
var trackedPages = map[string]bool{
	"/":          true,
	"/gallery":   true,
	"/about":     true,
	"/knowledge": true,
	"/contact":   true,
}

func trackable(c *gin.Context) bool {
	if c.Request.Method != "GET" {
		return false
	}
	if !trackedPages[c.Request.URL.Path] {
		return false
	}
	return Consent(c) == ConsentAccept
}

// ensureVisitorID returns the visitor cookie, minting one on first
// sight. The cookie is only issued once consent was given, so the
// middleware never fingerprints an undecided visitor.
func ensureVisitorID(c *gin.Context) string {
	if id, err := c.Cookie(VisitorCookie); err == nil && id != "" {
		return id
	}
	id := security.GenerateVisitorID()
	c.SetCookie(VisitorCookie, id, visitorMaxAge, "/", "", false, true)
	return id
}

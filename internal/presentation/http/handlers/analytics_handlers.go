package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pearlatelier/pearlsite-go/internal/application/services"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/messaging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
	"github.com/pearlatelier/pearlsite-go/internal/presentation/http/middleware"
)

var liveStatsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// AnalyticsHandlers handles visit tracking and the stats endpoints
type AnalyticsHandlers struct {
	analyticsService *services.AnalyticsService
	catalogService   *services.CatalogService
	broadcaster      *messaging.StatsBroadcaster
	logger           *logging.ChanneledLogger
	perfTracker      *performance.Tracker
}

// NewAnalyticsHandlers creates analytics handlers
func NewAnalyticsHandlers(analyticsService *services.AnalyticsService, catalogService *services.CatalogService, broadcaster *messaging.StatsBroadcaster, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AnalyticsHandlers {
	return &AnalyticsHandlers{
		analyticsService: analyticsService,
		catalogService:   catalogService,
		broadcaster:      broadcaster,
		logger:           logger,
		perfTracker:      perfTracker,
	}
}

type trackRequest struct {
	Path      string `json:"path"`
	VisitorID string `json:"visitor_id"`
	Referrer  string `json:"referrer"`
}

// PostTrack handles POST /api/analytics/track. Consent is enforced
// here too so a stale frontend cannot report views for a visitor who
// rejected cookies.
func (h *AnalyticsHandlers) PostTrack(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Path == "" {
		req.Path = "/"
	}

	if middleware.Consent(c) != middleware.ConsentAccept {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	err := h.analyticsService.Track(req.Path, req.VisitorID, c.ClientIP(), c.Request.UserAgent(), req.Referrer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record visit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PostConsent handles POST /api/analytics/consent with {"consent":
// "accepted"|"rejected"}
func (h *AnalyticsHandlers) PostConsent(c *gin.Context) {
	var req struct {
		Consent string `json:"consent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Consent != middleware.ConsentAccept && req.Consent != middleware.ConsentReject {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Consent must be accepted or rejected"})
		return
	}

	middleware.SetConsent(c, req.Consent)
	c.JSON(http.StatusOK, gin.H{"consent": req.Consent})
}

// GetStats handles GET /api/analytics/stats (admin)
func (h *AnalyticsHandlers) GetStats(c *gin.Context) {
	marker := h.perfTracker.StartOperation("handle_analytics_stats")
	defer marker.Complete()

	stats, err := h.analyticsService.Stats()
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	marker.SetSuccess(true)
	c.JSON(http.StatusOK, stats)
}

// GetAdminStats handles GET /api/admin/stats (admin content counters)
func (h *AnalyticsHandlers) GetAdminStats(c *gin.Context) {
	stats, err := h.catalogService.ContentStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetLiveStats handles GET /api/admin/stats/live, upgrading to a
// websocket that receives counter pushes until the client disconnects.
func (h *AnalyticsHandlers) GetLiveStats(c *gin.Context) {
	conn, err := liveStatsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.HTTP().Error("Websocket upgrade failed", "error", err.Error())
		return
	}

	client := &messaging.StatsClient{
		Conn: conn,
		Send: make(chan []byte, 8),
	}
	h.broadcaster.Register(client)

	go client.WritePump()

	// Reads are discarded; the loop exists to notice the disconnect.
	go func() {
		defer h.broadcaster.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

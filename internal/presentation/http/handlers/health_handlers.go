package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
)

// HealthHandlers handles the liveness and placeholder endpoints
type HealthHandlers struct{}

// NewHealthHandlers creates health handlers
func NewHealthHandlers() *HealthHandlers {
	return &HealthHandlers{}
}

// GetHealth handles GET /api/health
func (h *HealthHandlers) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": fmt.Sprintf("%s API running", config.SiteName),
	})
}

const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="500" viewBox="0 0 400 500">
    <rect fill="#E8E4DF" width="400" height="500"/>
    <circle cx="200" cy="200" r="60" fill="#D4CEC6"/>
    <text x="200" y="350" text-anchor="middle" fill="#999" font-size="14">珍珠饰品</text>
</svg>`

// GetPlaceholder handles GET /api/placeholder/:name with a static SVG.
// The name is accepted for URL compatibility and ignored.
func (h *HealthHandlers) GetPlaceholder(c *gin.Context) {
	c.Data(http.StatusOK, "image/svg+xml", []byte(placeholderSVG))
}

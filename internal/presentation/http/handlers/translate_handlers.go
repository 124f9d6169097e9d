package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pearlatelier/pearlsite-go/internal/application/services"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
)

// TranslateHandlers handles the admin translate-assist endpoint
type TranslateHandlers struct {
	translateService *services.TranslateService
	logger           *logging.ChanneledLogger
}

// NewTranslateHandlers creates translate handlers
func NewTranslateHandlers(translateService *services.TranslateService, logger *logging.ChanneledLogger) *TranslateHandlers {
	return &TranslateHandlers{translateService: translateService, logger: logger}
}

// PostTranslate handles POST /api/translate with {"text": ...},
// answering {"translatedText": ...}
func (h *TranslateHandlers) PostTranslate(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}
	if !h.translateService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Translation is not configured"})
		return
	}

	translated, err := h.translateService.Translate(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Translation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"translatedText": translated})
}

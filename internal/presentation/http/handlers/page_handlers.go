package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pearlatelier/pearlsite-go/internal/application/services"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
)

// PageHandlers handles editable page content endpoints
type PageHandlers struct {
	pageService *services.PageService
	logger      *logging.ChanneledLogger
}

// NewPageHandlers creates page handlers
func NewPageHandlers(pageService *services.PageService, logger *logging.ChanneledLogger) *PageHandlers {
	return &PageHandlers{pageService: pageService, logger: logger}
}

// GetPages handles GET /api/pages (admin)
func (h *PageHandlers) GetPages(c *gin.Context) {
	pages, err := h.pageService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pages"})
		return
	}
	c.JSON(http.StatusOK, pages)
}

// GetPage handles GET /api/pages/:key (public). The response is the
// parsed field map; unknown keys answer an empty object.
func (h *PageHandlers) GetPage(c *gin.Context) {
	fields, err := h.pageService.Fields(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}
	c.JSON(http.StatusOK, fields)
}

// PutPage handles PUT /api/pages/:key (admin)
func (h *PageHandlers) PutPage(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	page, err := h.pageService.Save(c.Param("key"), fields)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

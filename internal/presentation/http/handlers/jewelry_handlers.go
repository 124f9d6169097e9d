package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pearlatelier/pearlsite-go/internal/application/services"
	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
	persistence "github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/content"
)

const defaultPerPage = 10

// JewelryHandlers handles catalog CRUD endpoints
type JewelryHandlers struct {
	catalogService *services.CatalogService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewJewelryHandlers creates jewelry handlers
func NewJewelryHandlers(catalogService *services.CatalogService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *JewelryHandlers {
	return &JewelryHandlers{
		catalogService: catalogService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetJewelry handles GET /api/jewelry with featured/limit/all/page filters
func (h *JewelryHandlers) GetJewelry(c *gin.Context) {
	marker := h.perfTracker.StartOperation("handle_get_jewelry")
	defer marker.Complete()

	filter := persistence.ListFilter{
		VisibleOnly:  c.Query("all") != "true",
		FeaturedOnly: c.Query("featured") != "",
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	page := 0
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}

	// Page requests paginate in memory over the filtered set; plain
	// requests pass the limit to the repository.
	if page == 0 {
		filter.Limit = limit
	}

	items, err := h.catalogService.List(filter)
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load jewelry"})
		return
	}
	marker.SetSuccess(true)

	if page > 0 {
		perPage := limit
		if perPage == 0 {
			perPage = defaultPerPage
		}
		c.JSON(http.StatusOK, paginate(items, page, perPage))
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetJewelryItem handles GET /api/jewelry/:id
func (h *JewelryHandlers) GetJewelryItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid jewelry id"})
		return
	}

	item, err := h.catalogService.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load jewelry"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Jewelry not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// PostJewelry handles POST /api/jewelry
func (h *JewelryHandlers) PostJewelry(c *gin.Context) {
	var input services.JewelryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := h.catalogService.Create(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PutJewelry handles PUT /api/jewelry/:id
func (h *JewelryHandlers) PutJewelry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid jewelry id"})
		return
	}

	var input services.JewelryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := h.catalogService.Update(id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteJewelry handles DELETE /api/jewelry/:id
func (h *JewelryHandlers) DeleteJewelry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid jewelry id"})
		return
	}

	if err := h.catalogService.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func paginate(items []*content.Jewelry, page, perPage int) gin.H {
	total := len(items)
	pages := (total + perPage - 1) / perPage
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return gin.H{
		"items":    items[start:end],
		"total":    total,
		"pages":    pages,
		"page":     page,
		"per_page": perPage,
	}
}

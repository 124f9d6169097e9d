package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pearlatelier/pearlsite-go/internal/application/services"
	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
)

// GalleryHandlers handles the inspiration gallery endpoints
type GalleryHandlers struct {
	galleryService *services.GalleryService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewGalleryHandlers creates gallery handlers
func NewGalleryHandlers(galleryService *services.GalleryService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *GalleryHandlers {
	return &GalleryHandlers{
		galleryService: galleryService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetGallery handles GET /api/gallery. Defaults to visible images;
// ?visible=false returns hidden ones too.
func (h *GalleryHandlers) GetGallery(c *gin.Context) {
	visibleOnly := c.DefaultQuery("visible", "true") != "false"

	var (
		images []*content.GalleryImage
		err    error
	)
	if visibleOnly {
		images, err = h.galleryService.ListPublic()
	} else {
		images, err = h.galleryService.ListAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// GetGalleryAll handles GET /api/gallery/all (admin, hidden included)
func (h *GalleryHandlers) GetGalleryAll(c *gin.Context) {
	images, err := h.galleryService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// PostGalleryUpload handles POST /api/gallery/upload
func (h *GalleryHandlers) PostGalleryUpload(c *gin.Context) {
	marker := h.perfTracker.StartOperation("handle_gallery_upload")
	defer marker.Complete()

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}
	defer f.Close()

	img, err := h.galleryService.Upload(f, fh.Filename, c.PostForm("title"), c.PostForm("title_en"), c.PostForm("alt"))
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusCreated, img)
}

// PutGalleryImage handles PUT /api/gallery/:id
func (h *GalleryHandlers) PutGalleryImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery image id"})
		return
	}

	var input services.GalleryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	img, err := h.galleryService.Update(id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, img)
}

// DeleteGalleryImage handles DELETE /api/gallery/:id
func (h *GalleryHandlers) DeleteGalleryImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery image id"})
		return
	}

	if err := h.galleryService.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// PostGalleryReorder handles POST /api/gallery/reorder
func (h *GalleryHandlers) PostGalleryReorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.galleryService.Reorder(req.Order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder gallery"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reordered"})
}

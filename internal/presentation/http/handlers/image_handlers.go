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

// ImageHandlers handles the jewelry image pool endpoints
type ImageHandlers struct {
	imageService *services.ImageService
	logger       *logging.ChanneledLogger
	perfTracker  *performance.Tracker
}

// NewImageHandlers creates image handlers
func NewImageHandlers(imageService *services.ImageService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ImageHandlers {
	return &ImageHandlers{
		imageService: imageService,
		logger:       logger,
		perfTracker:  perfTracker,
	}
}

// GetImages handles GET /api/images
func (h *ImageHandlers) GetImages(c *gin.Context) {
	images, err := h.imageService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load images"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// PostUpload handles POST /api/upload. Accepts multiple files under
// `images` plus an optional `jewelry_id` to assign on the spot.
func (h *ImageHandlers) PostUpload(c *gin.Context) {
	marker := h.perfTracker.StartOperation("handle_upload_images")
	defer marker.Complete()

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	var jewelryID *int64
	if raw := c.PostForm("jewelry_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid jewelry_id"})
			return
		}
		jewelryID = &id
	}

	uploaded := make([]*content.Image, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			marker.SetError(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
			return
		}
		img, err := h.imageService.Upload(f, fh.Filename)
		f.Close()
		if err != nil {
			marker.SetError(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if jewelryID != nil {
			img, err = h.imageService.Update(img.ID, services.ImageInput{
				JewelryID:     jewelryID,
				Description:   img.Description,
				DescriptionEn: img.DescriptionEn,
				OrderIndex:    len(uploaded),
			})
			if err != nil {
				marker.SetError(err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
		uploaded = append(uploaded, img)
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusCreated, gin.H{"images": uploaded})
}

// PutImage handles PUT /api/images/:id
func (h *ImageHandlers) PutImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image id"})
		return
	}

	var input services.ImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	img, err := h.imageService.Update(id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, img)
}

// DeleteImage handles DELETE /api/images/:id
func (h *ImageHandlers) DeleteImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image id"})
		return
	}

	if err := h.imageService.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

type reorderRequest struct {
	Order []content.ReorderEntry `json:"order"`
}

// PostImagesReorder handles POST /api/images/reorder
func (h *ImageHandlers) PostImagesReorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.imageService.Reorder(req.Order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder images"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reordered"})
}

package services

import (
	"fmt"
	"io"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/media"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
	persistence "github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/security"
)

// ImageService manages the jewelry image pool and its uploads
type ImageService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	images      *persistence.SQLImageRepository
	processor   *media.ImageProcessor
}

// NewImageService creates a new image service
func NewImageService(logger *logging.ChanneledLogger, perfTracker *performance.Tracker, images *persistence.SQLImageRepository, processor *media.ImageProcessor) *ImageService {
	return &ImageService{
		logger:      logger,
		perfTracker: perfTracker,
		images:      images,
		processor:   processor,
	}
}

// ImageInput carries the mutable fields of a pool image
type ImageInput struct {
	JewelryID     *int64 `json:"jewelry_id"`
	Description   string `json:"description"`
	DescriptionEn string `json:"description_en"`
	OrderIndex    int    `json:"order_index"`
}

// List returns the full image pool, newest first
func (s *ImageService) List() ([]*content.Image, error) {
	return s.images.FindAll()
}

// Upload stores one uploaded file, compresses it, generates a thumbnail
// and records it in the pool
func (s *ImageService) Upload(r io.Reader, originalName string) (*content.Image, error) {
	marker := s.perfTracker.StartOperation("image_upload")
	defer marker.Complete()

	if !media.AllowedFile(originalName) {
		marker.SetSuccess(false)
		return nil, fmt.Errorf("unsupported file type: %s", originalName)
	}

	filename := security.GenerateUploadFilename("", media.Ext(originalName))
	path, err := s.processor.SaveUpload(r, filename)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	img := &content.Image{
		Filename:     filename,
		OriginalName: originalName,
		Path:         path,
	}
	if err := s.images.Create(img); err != nil {
		s.processor.Remove(filename)
		marker.SetError(err)
		return nil, err
	}

	s.logger.Media().Info("Image uploaded", "id", img.ID, "filename", filename, "original", originalName)
	marker.SetSuccess(true)
	return s.images.FindByID(img.ID)
}

// Update changes an image's jewelry assignment, descriptions or position
func (s *ImageService) Update(id int64, input ImageInput) (*content.Image, error) {
	img, err := s.images.FindByID(id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("image %d not found", id)
	}

	img.JewelryID = input.JewelryID
	img.Description = input.Description
	img.DescriptionEn = input.DescriptionEn
	img.OrderIndex = input.OrderIndex

	if err := s.images.Update(img); err != nil {
		return nil, err
	}
	return s.images.FindByID(id)
}

// Delete removes an image record and its files on disk
func (s *ImageService) Delete(id int64) error {
	img, err := s.images.FindByID(id)
	if err != nil {
		return err
	}
	if img == nil {
		return fmt.Errorf("image %d not found", id)
	}

	if err := s.images.Delete(id); err != nil {
		return err
	}
	s.processor.Remove(img.Filename)
	s.logger.Media().Info("Image deleted", "id", id, "filename", img.Filename)
	return nil
}

// Reorder rewrites order indexes from an explicit entry list
func (s *ImageService) Reorder(entries []content.ReorderEntry) error {
	return s.images.Reorder(entries)
}

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

// GalleryService manages the standalone inspiration gallery
type GalleryService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	gallery     *persistence.SQLGalleryRepository
	processor   *media.ImageProcessor
}

// NewGalleryService creates a new gallery service
func NewGalleryService(logger *logging.ChanneledLogger, perfTracker *performance.Tracker, gallery *persistence.SQLGalleryRepository, processor *media.ImageProcessor) *GalleryService {
	return &GalleryService{
		logger:      logger,
		perfTracker: perfTracker,
		gallery:     gallery,
		processor:   processor,
	}
}

// GalleryInput carries the mutable fields of a gallery image
type GalleryInput struct {
	Title     string `json:"title"`
	TitleEn   string `json:"title_en"`
	Alt       string `json:"alt"`
	IsVisible *bool  `json:"is_visible"`
}

// ListPublic returns visible gallery images in display order
func (s *GalleryService) ListPublic() ([]*content.GalleryImage, error) {
	return s.gallery.FindAll(true)
}

// ListAll returns every gallery image including hidden ones
func (s *GalleryService) ListAll() ([]*content.GalleryImage, error) {
	return s.gallery.FindAll(false)
}

// Upload stores a new gallery image at the end of the display order
func (s *GalleryService) Upload(r io.Reader, originalName, title, titleEn, alt string) (*content.GalleryImage, error) {
	marker := s.perfTracker.StartOperation("gallery_upload")
	defer marker.Complete()

	if !media.AllowedFile(originalName) {
		marker.SetSuccess(false)
		return nil, fmt.Errorf("unsupported file type: %s", originalName)
	}

	filename := security.GenerateUploadFilename("gallery", media.Ext(originalName))
	path, err := s.processor.SaveUpload(r, filename)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	img := &content.GalleryImage{
		Filename:     filename,
		OriginalName: originalName,
		Path:         path,
		Title:        title,
		TitleEn:      titleEn,
		Alt:          alt,
		IsVisible:    true,
	}
	if err := s.gallery.Create(img); err != nil {
		s.processor.Remove(filename)
		marker.SetError(err)
		return nil, err
	}

	s.logger.Media().Info("Gallery image uploaded", "id", img.ID, "filename", filename)
	marker.SetSuccess(true)
	return s.gallery.FindByID(img.ID)
}

// Update changes a gallery image's titles, alt text or visibility
func (s *GalleryService) Update(id int64, input GalleryInput) (*content.GalleryImage, error) {
	img, err := s.gallery.FindByID(id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("gallery image %d not found", id)
	}

	img.Title = input.Title
	img.TitleEn = input.TitleEn
	img.Alt = input.Alt
	if input.IsVisible != nil {
		img.IsVisible = *input.IsVisible
	}

	if err := s.gallery.Update(img); err != nil {
		return nil, err
	}
	return s.gallery.FindByID(id)
}

// Delete removes a gallery image record and its files on disk
func (s *GalleryService) Delete(id int64) error {
	img, err := s.gallery.FindByID(id)
	if err != nil {
		return err
	}
	if img == nil {
		return fmt.Errorf("gallery image %d not found", id)
	}

	if err := s.gallery.Delete(id); err != nil {
		return err
	}
	s.processor.Remove(img.Filename)
	s.logger.Media().Info("Gallery image deleted", "id", id, "filename", img.Filename)
	return nil
}

// Reorder rewrites the gallery display order from an explicit entry list
func (s *GalleryService) Reorder(entries []content.ReorderEntry) error {
	return s.gallery.Reorder(entries)
}

package services

import (
	"fmt"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/analytics"
	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
	persistence "github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/content"
)

// CatalogService manages jewelry pieces and their image assignments
type CatalogService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	jewelry     *persistence.SQLJewelryRepository
	images      *persistence.SQLImageRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(logger *logging.ChanneledLogger, perfTracker *performance.Tracker, jewelry *persistence.SQLJewelryRepository, images *persistence.SQLImageRepository) *CatalogService {
	return &CatalogService{
		logger:      logger,
		perfTracker: perfTracker,
		jewelry:     jewelry,
		images:      images,
	}
}

// JewelryInput carries the mutable fields of a jewelry piece
type JewelryInput struct {
	Name          string `json:"name"`
	NameEn        string `json:"name_en"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	DescriptionEn string `json:"description_en"`
	OrderIndex    int    `json:"order_index"`
	IsVisible     *bool  `json:"is_visible"`
	IsFeatured    *bool  `json:"is_featured"`
}

// List returns jewelry matching an explicit filter
func (s *CatalogService) List(filter persistence.ListFilter) ([]*content.Jewelry, error) {
	return s.jewelry.FindAll(filter)
}

// ListPublic returns visible jewelry ordered for the storefront
func (s *CatalogService) ListPublic() ([]*content.Jewelry, error) {
	marker := s.perfTracker.StartOperation("catalog_list_public")
	defer marker.Complete()

	items, err := s.jewelry.FindAll(persistence.ListFilter{VisibleOnly: true})
	if err != nil {
		marker.SetError(err)
		return nil, err
	}
	marker.SetSuccess(true)
	return items, nil
}

// ListFeatured returns visible featured pieces, capped for the home page
func (s *CatalogService) ListFeatured(limit int) ([]*content.Jewelry, error) {
	return s.jewelry.FindAll(persistence.ListFilter{VisibleOnly: true, FeaturedOnly: true, Limit: limit})
}

// ListAll returns every piece including hidden ones, for the admin panel
func (s *CatalogService) ListAll() ([]*content.Jewelry, error) {
	return s.jewelry.FindAll(persistence.ListFilter{})
}

// Get returns a single jewelry piece with its images
func (s *CatalogService) Get(id int64) (*content.Jewelry, error) {
	return s.jewelry.FindByID(id)
}

// Create stores a new jewelry piece
func (s *CatalogService) Create(input JewelryInput) (*content.Jewelry, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	item := &content.Jewelry{
		Name:          input.Name,
		NameEn:        input.NameEn,
		Category:      input.Category,
		Description:   input.Description,
		DescriptionEn: input.DescriptionEn,
		OrderIndex:    input.OrderIndex,
		IsVisible:     true,
	}
	if input.IsVisible != nil {
		item.IsVisible = *input.IsVisible
	}
	if input.IsFeatured != nil {
		item.IsFeatured = *input.IsFeatured
	}

	if err := s.jewelry.Create(item); err != nil {
		return nil, err
	}
	s.logger.Content().Info("Jewelry created", "id", item.ID, "name", item.Name)
	return s.jewelry.FindByID(item.ID)
}

// Update applies partial changes to an existing piece
func (s *CatalogService) Update(id int64, input JewelryInput) (*content.Jewelry, error) {
	item, err := s.jewelry.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("jewelry %d not found", id)
	}

	if input.Name != "" {
		item.Name = input.Name
	}
	item.NameEn = input.NameEn
	item.Category = input.Category
	item.Description = input.Description
	item.DescriptionEn = input.DescriptionEn
	item.OrderIndex = input.OrderIndex
	if input.IsVisible != nil {
		item.IsVisible = *input.IsVisible
	}
	if input.IsFeatured != nil {
		item.IsFeatured = *input.IsFeatured
	}

	if err := s.jewelry.Update(item); err != nil {
		return nil, err
	}
	s.logger.Content().Info("Jewelry updated", "id", id)
	return s.jewelry.FindByID(id)
}

// Delete removes a piece. Its images return to the unassigned pool.
func (s *CatalogService) Delete(id int64) error {
	if err := s.jewelry.Delete(id); err != nil {
		return err
	}
	s.logger.Content().Info("Jewelry deleted", "id", id)
	return nil
}

// ContentStats summarizes catalog size for the admin dashboard
func (s *CatalogService) ContentStats() (*analytics.ContentStats, error) {
	total, visible, err := s.jewelry.Count()
	if err != nil {
		return nil, err
	}
	imageCount, err := s.images.Count()
	if err != nil {
		return nil, err
	}
	return &analytics.ContentStats{
		JewelryCount: total,
		ImageCount:   imageCount,
		VisibleCount: visible,
	}, nil
}

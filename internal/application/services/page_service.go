package services

import (
	"encoding/json"
	"fmt"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	persistence "github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/content"
)

// PageService manages editable page content blobs
type PageService struct {
	logger *logging.ChanneledLogger
	pages  *persistence.SQLPageRepository
}

// NewPageService creates a new page service
func NewPageService(logger *logging.ChanneledLogger, pages *persistence.SQLPageRepository) *PageService {
	return &PageService{logger: logger, pages: pages}
}

// List returns every stored page
func (s *PageService) List() ([]*content.Page, error) {
	return s.pages.FindAll()
}

// Fields returns the decoded field map for a page key. Unknown keys and
// corrupt blobs both come back as an empty map, never an error page.
func (s *PageService) Fields(pageKey string) (map[string]string, error) {
	page, err := s.pages.FindByKey(pageKey)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return map[string]string{}, nil
	}
	return page.Fields(), nil
}

// Save validates and stores a page's field map as a JSON blob
func (s *PageService) Save(pageKey string, fields map[string]string) (*content.Page, error) {
	if pageKey == "" {
		return nil, fmt.Errorf("page key is required")
	}
	if fields == nil {
		fields = map[string]string{}
	}

	blob, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode page content: %w", err)
	}

	page, err := s.pages.Upsert(pageKey, string(blob))
	if err != nil {
		return nil, err
	}
	s.logger.Content().Info("Page saved", "pageKey", pageKey)
	return page, nil
}

package views

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	items []*content.Jewelry
	err   error
}

func (s *stubLister) ListPublic() ([]*content.Jewelry, error) {
	return s.items, s.err
}

func makeItems(n int, category string) []*content.Jewelry {
	items := make([]*content.Jewelry, n)
	for i := range items {
		items[i] = &content.Jewelry{
			ID:       int64(i + 1),
			Name:     fmt.Sprintf("piece %d", i+1),
			Category: category,
		}
	}
	return items
}

func TestLoadCatalogFallsBackOnError(t *testing.T) {
	view := LoadCatalog(&stubLister{err: errors.New("db down")}, "all", 1)

	require.True(t, view.Fallback)
	assert.Len(t, view.Items, 8)
	assert.Len(t, view.PageItems, 8)
	assert.Equal(t, 1, view.TotalPages)
}

func TestLoadCatalogEmptyCategoryIsWildcard(t *testing.T) {
	view := LoadCatalog(&stubLister{items: makeItems(3, "rings")}, "", 1)

	assert.Equal(t, CategoryAll, view.Category)
	assert.Len(t, view.PageItems, 3)
}

func TestFilterByCategory(t *testing.T) {
	items := []*content.Jewelry{
		{ID: 1, Category: "earrings"},
		{ID: 2, Category: "necklaces"},
		{ID: 3, Category: "earrings,sets"},
	}

	assert.Len(t, FilterByCategory(items, "all"), 3)

	earrings := FilterByCategory(items, "earrings")
	require.Len(t, earrings, 2)
	assert.Equal(t, int64(1), earrings[0].ID)
	assert.Equal(t, int64(3), earrings[1].ID)

	sets := FilterByCategory(items, "sets")
	require.Len(t, sets, 1)
	assert.Equal(t, int64(3), sets[0].ID)

	assert.Empty(t, FilterByCategory(items, "brooches"))
}

func TestPaginationBounds(t *testing.T) {
	lister := &stubLister{items: makeItems(65, "rings")}

	view := LoadCatalog(lister, "all", 1)
	assert.Equal(t, 3, view.TotalPages)
	assert.Len(t, view.PageItems, 30)
	assert.Equal(t, int64(1), view.PageItems[0].ID)

	view = LoadCatalog(lister, "all", 3)
	assert.Len(t, view.PageItems, 5)
	assert.Equal(t, int64(61), view.PageItems[0].ID)

	// Out-of-range requests clamp instead of erroring.
	view = LoadCatalog(lister, "all", 99)
	assert.Equal(t, 3, view.Page)
	assert.Len(t, view.PageItems, 5)

	view = LoadCatalog(lister, "all", -4)
	assert.Equal(t, 1, view.Page)
}

func TestPaginationEmptySet(t *testing.T) {
	view := LoadCatalog(&stubLister{items: nil}, "all", 5)

	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, 1, view.Page)
	assert.Empty(t, view.PageItems)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-1, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(7, 3))
	assert.Equal(t, 1, ClampPage(5, 0))
}

func TestPlaceholderGradientDeterministic(t *testing.T) {
	assert.Equal(t, PlaceholderGradient(3), PlaceholderGradient(3))
	assert.NotEqual(t, PlaceholderGradient(0), PlaceholderGradient(1))
	assert.Equal(t,
		"linear-gradient(135deg, hsl(35, 18%, 88%) 0%, hsl(40, 22%, 82%) 100%)",
		PlaceholderGradient(0),
	)
}

func TestFallbackCatalogIsACopy(t *testing.T) {
	first := FallbackCatalog()
	first[0] = nil
	assert.NotNil(t, FallbackCatalog()[0])
}

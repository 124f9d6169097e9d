// Package views holds the view-model logic behind the server-rendered
// public pages: catalog filtering and pagination, the detail carousel
// and the page content merge.
package views

import (
	"fmt"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
)

// CategoryAll matches every item regardless of its category tokens.
const CategoryAll = "all"

// fallbackCatalog renders when the repository cannot be reached, so
// the gallery never shows an empty grid.
var fallbackCatalog = []*content.Jewelry{
	{ID: 1, Name: "晨露珍珠耳环", NameEn: "Morning Dew Pearl Earrings", Category: "earrings"},
	{ID: 2, Name: "月光珍珠项链", NameEn: "Moonlight Pearl Necklace", Category: "necklaces"},
	{ID: 3, Name: "海韵珍珠戒指", NameEn: "Ocean Pearl Ring", Category: "rings"},
	{ID: 4, Name: "柔光珍珠手链", NameEn: "Soft Glow Pearl Bracelet", Category: "bracelets"},
	{ID: 5, Name: "流苏珍珠耳坠", NameEn: "Tassel Pearl Drops", Category: "earrings"},
	{ID: 6, Name: "山茶珍珠胸针", NameEn: "Camellia Pearl Brooch", Category: "brooches"},
	{ID: 7, Name: "叠戴珍珠锁骨链", NameEn: "Layered Pearl Choker", Category: "necklaces"},
	{ID: 8, Name: "珍珠礼盒套装", NameEn: "Pearl Gift Set", Category: "sets"},
}

// FallbackCatalog returns a copy of the built-in placeholder list.
func FallbackCatalog() []*content.Jewelry {
	items := make([]*content.Jewelry, len(fallbackCatalog))
	copy(items, fallbackCatalog)
	return items
}

// CatalogLister is the slice of the catalog service the view needs.
type CatalogLister interface {
	ListPublic() ([]*content.Jewelry, error)
}

// CatalogView is the computed state behind one gallery page render.
type CatalogView struct {
	Items      []*content.Jewelry
	Category   string
	Page       int
	TotalPages int
	PageItems  []*content.Jewelry
	Fallback   bool
}

// LoadCatalog builds the gallery view for a category filter and a
// requested page number. A repository failure falls back to the fixed
// placeholder list instead of an error page.
func LoadCatalog(lister CatalogLister, category string, page int) *CatalogView {
	view := &CatalogView{Category: category}
	if view.Category == "" {
		view.Category = CategoryAll
	}

	items, err := lister.ListPublic()
	if err != nil {
		items = FallbackCatalog()
		view.Fallback = true
	}
	view.Items = items

	filtered := FilterByCategory(items, view.Category)
	view.TotalPages = totalPages(len(filtered), config.CatalogPageSize)
	view.Page = ClampPage(page, view.TotalPages)
	view.PageItems = pageSlice(filtered, view.Page, config.CatalogPageSize)
	return view
}

// FilterByCategory keeps items carrying the given category token. The
// "all" wildcard keeps everything.
func FilterByCategory(items []*content.Jewelry, category string) []*content.Jewelry {
	if category == CategoryAll || category == "" {
		return items
	}
	filtered := make([]*content.Jewelry, 0, len(items))
	for _, item := range items {
		if item.HasCategory(category) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// ClampPage bounds a requested page number into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func totalPages(count, pageSize int) int {
	if count == 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

func pageSlice(items []*content.Jewelry, page, pageSize int) []*content.Jewelry {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PlaceholderGradient returns the CSS gradient shown for a zero-image
// item, keyed by its position in the rendered grid.
func PlaceholderGradient(index int) string {
	return fmt.Sprintf(
		"linear-gradient(135deg, hsl(%d, 18%%, %d%%) 0%%, hsl(%d, 22%%, %d%%) 100%%)",
		35+index*8, 88-index*2, 40+index*8, 82-index*2,
	)
}

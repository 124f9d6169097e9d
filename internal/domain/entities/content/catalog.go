// Package content defines the editable content entities of the site:
// catalog items, their images, the home gallery and page blobs.
package content

import (
	"strings"
	"time"
)

// Jewelry is a catalog item shown on the public gallery page.
type Jewelry struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	NameEn        string    `json:"name_en"`
	Category      string    `json:"category"` // single token or comma-joined multi-category string
	Description   string    `json:"description"`
	DescriptionEn string    `json:"description_en"`
	OrderIndex    int       `json:"order_index"`
	IsVisible     bool      `json:"is_visible"`
	IsFeatured    bool      `json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"-"`
	Images        []*Image  `json:"images"`
}

// LocalizedName returns the English name when asked for and available,
// falling back to the native name.
func (j *Jewelry) LocalizedName(english bool) string {
	if english && j.NameEn != "" {
		return j.NameEn
	}
	return j.Name
}

// LocalizedDescription falls back from English to native description.
func (j *Jewelry) LocalizedDescription(english bool) string {
	if english && j.DescriptionEn != "" {
		return j.DescriptionEn
	}
	return j.Description
}

// HasCategory reports whether the item carries the given category token.
// The wildcard "all" matches every item.
func (j *Jewelry) HasCategory(token string) bool {
	if token == "" || token == "all" {
		return true
	}
	for _, c := range SplitCategories(j.Category) {
		if c == token {
			return true
		}
	}
	return false
}

// Image is a stored picture, optionally assigned to one catalog item.
// Unassigned images form the admin's image pool.
type Image struct {
	ID            int64     `json:"id"`
	Filename      string    `json:"filename"`
	OriginalName  string    `json:"original_name"`
	Path          string    `json:"path"`
	JewelryID     *int64    `json:"jewelry_id"`
	Description   string    `json:"description"`
	DescriptionEn string    `json:"description_en"`
	OrderIndex    int       `json:"order_index"`
	CreatedAt     time.Time `json:"-"`
}

// ThumbnailPath derives the thumbnail location from the image path
// (`_thumb` inserted before the extension).
func (i *Image) ThumbnailPath() string {
	dot := strings.LastIndex(i.Path, ".")
	if dot < 0 {
		return i.Path
	}
	return i.Path[:dot] + "_thumb" + i.Path[dot:]
}

// LocalizedDescription resolves the per-image description override,
// falling back through the item-level description chain handled by the
// caller when empty.
func (i *Image) LocalizedDescription(english bool) string {
	if english && i.DescriptionEn != "" {
		return i.DescriptionEn
	}
	return i.Description
}

// GalleryImage is a decorative image on the home page, independent of
// the catalog image pool.
type GalleryImage struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	Path         string    `json:"path"`
	Title        string    `json:"title"`
	TitleEn      string    `json:"title_en"`
	Alt          string    `json:"alt"`
	OrderIndex   int       `json:"order_index"`
	IsVisible    bool      `json:"is_visible"`
	CreatedAt    time.Time `json:"created_at"`
}

// LocalizedTitle falls back from English to native title.
func (g *GalleryImage) LocalizedTitle(english bool) string {
	if english && g.TitleEn != "" {
		return g.TitleEn
	}
	return g.Title
}

// ReorderEntry assigns a new order index to one record. Reorder
// requests carry the entire resulting order, not a delta.
type ReorderEntry struct {
	ID         int64 `json:"id"`
	OrderIndex int   `json:"order_index"`
}

// SplitCategories splits a comma-joined category string into tokens,
// dropping empty segments.
func SplitCategories(s string) []string {
	if s == "" {
		return nil
	}
	var tokens []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// JoinCategories joins category tokens back into the stored form.
func JoinCategories(tokens []string) string {
	return strings.Join(tokens, ",")
}

// ToggleCategory adds the token when absent and removes it when
// present. Token order follows toggle order; there is no
// canonicalization beyond the set-like toggle itself.
func ToggleCategory(s, token string) string {
	tokens := SplitCategories(s)
	for i, c := range tokens {
		if c == token {
			return JoinCategories(append(tokens[:i], tokens[i+1:]...))
		}
	}
	return JoinCategories(append(tokens, token))
}

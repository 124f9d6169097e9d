package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCategory(t *testing.T) {
	item := &Jewelry{Category: "earrings,sets"}

	assert.True(t, item.HasCategory("all"))
	assert.True(t, item.HasCategory("earrings"))
	assert.True(t, item.HasCategory("sets"))
	assert.False(t, item.HasCategory("rings"))
	assert.False(t, item.HasCategory("ear"))
}

func TestLocalizedNameFallback(t *testing.T) {
	item := &Jewelry{Name: "月光", NameEn: "Moonlight"}
	assert.Equal(t, "Moonlight", item.LocalizedName(true))
	assert.Equal(t, "月光", item.LocalizedName(false))

	item.NameEn = ""
	assert.Equal(t, "月光", item.LocalizedName(true))
}

func TestToggleCategory(t *testing.T) {
	assert.Equal(t, "earrings", ToggleCategory("", "earrings"))
	assert.Equal(t, "earrings,sets", ToggleCategory("earrings", "sets"))
	assert.Equal(t, "sets", ToggleCategory("earrings,sets", "earrings"))
	assert.Equal(t, "", ToggleCategory("earrings", "earrings"))

	// Toggle order is preserved, never re-sorted.
	joined := ToggleCategory(ToggleCategory("sets", "earrings"), "rings")
	assert.Equal(t, "sets,earrings,rings", joined)
}

func TestSplitCategoriesDropsEmptySegments(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitCategories("a,,b,"))
	assert.Nil(t, SplitCategories(""))
}

func TestThumbnailPath(t *testing.T) {
	img := &Image{Path: "/uploads/abc123.jpg"}
	assert.Equal(t, "/uploads/abc123_thumb.jpg", img.ThumbnailPath())

	img.Path = "/uploads/noext"
	assert.Equal(t, "/uploads/noext_thumb", img.ThumbnailPath())
}

func TestGalleryLocalizedTitle(t *testing.T) {
	img := &GalleryImage{Title: "晨光", TitleEn: "Morning light"}
	assert.Equal(t, "Morning light", img.LocalizedTitle(true))
	assert.Equal(t, "晨光", img.LocalizedTitle(false))

	img.TitleEn = ""
	assert.Equal(t, "晨光", img.LocalizedTitle(true))
}

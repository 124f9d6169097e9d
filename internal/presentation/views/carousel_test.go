package views

import (
	"testing"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/stretchr/testify/assert"
)

func itemWithImages(n int) *content.Jewelry {
	images := make([]*content.Image, n)
	for i := range images {
		images[i] = &content.Image{ID: int64(i + 1), Path: "/uploads/a.jpg"}
	}
	return &content.Jewelry{ID: 1, Name: "测试", Images: images}
}

func TestCarouselWrapsCircularly(t *testing.T) {
	c := OpenCarousel(itemWithImages(3))
	assert.Equal(t, 0, c.Index)

	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Index)
	c.Next()
	assert.Equal(t, 0, c.Index, "next from last wraps to first")

	c.Prev()
	assert.Equal(t, 2, c.Index, "prev from first wraps to last")
}

func TestCarouselDisabledWithOneImage(t *testing.T) {
	c := OpenCarousel(itemWithImages(1))
	assert.False(t, c.Enabled())

	c.Next()
	assert.Equal(t, 0, c.Index)
	c.Prev()
	assert.Equal(t, 0, c.Index)
}

func TestCarouselDisabledWithNoImages(t *testing.T) {
	c := OpenCarousel(itemWithImages(0))
	assert.False(t, c.Enabled())
	assert.Nil(t, c.Current())

	c.SetIndex(5)
	assert.Equal(t, 0, c.Index)
}

func TestCarouselSetIndexWraps(t *testing.T) {
	c := OpenCarousel(itemWithImages(3))

	c.SetIndex(4)
	assert.Equal(t, 1, c.Index)
	c.SetIndex(-1)
	assert.Equal(t, 2, c.Index)
}

func TestFrameDescriptionFallbackChain(t *testing.T) {
	item := &content.Jewelry{
		Name:          "项链",
		Description:   "手工项链",
		DescriptionEn: "Handmade necklace",
		Images: []*content.Image{
			{Description: "正面", DescriptionEn: "Front view"},
			{},
		},
	}

	c := OpenCarousel(item)
	assert.Equal(t, "Front view", c.FrameDescription(true))
	assert.Equal(t, "正面", c.FrameDescription(false))

	c.Next()
	assert.Equal(t, "Handmade necklace", c.FrameDescription(true), "empty frame caption falls back to the item")
	assert.Equal(t, "手工项链", c.FrameDescription(false))
}

func TestFrameDescriptionMissingTranslationUsesNative(t *testing.T) {
	item := &content.Jewelry{Description: "只有中文"}
	c := OpenCarousel(item)
	assert.Equal(t, "只有中文", c.FrameDescription(true))
}

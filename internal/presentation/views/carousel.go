package views

import "github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"

// Carousel is the image rotation state of one opened detail view.
type Carousel struct {
	Item  *content.Jewelry
	Index int
}

// OpenCarousel pins an item at its first image.
func OpenCarousel(item *content.Jewelry) *Carousel {
	return &Carousel{Item: item, Index: 0}
}

// Enabled reports whether the next/prev controls are active. A single
// image or none leaves the carousel static.
func (c *Carousel) Enabled() bool {
	return len(c.Item.Images) > 1
}

// Next advances one frame, wrapping from the last image to the first.
func (c *Carousel) Next() {
	if !c.Enabled() {
		return
	}
	if c.Index == len(c.Item.Images)-1 {
		c.Index = 0
	} else {
		c.Index++
	}
}

// Prev steps back one frame, wrapping from the first image to the last.
func (c *Carousel) Prev() {
	if !c.Enabled() {
		return
	}
	if c.Index == 0 {
		c.Index = len(c.Item.Images) - 1
	} else {
		c.Index--
	}
}

// SetIndex jumps to a requested frame, wrapping out-of-range values
// into the valid window.
func (c *Carousel) SetIndex(index int) {
	n := len(c.Item.Images)
	if n == 0 {
		c.Index = 0
		return
	}
	c.Index = ((index % n) + n) % n
}

// Current returns the image under the cursor, or nil when the item has
// no images.
func (c *Carousel) Current() *content.Image {
	if len(c.Item.Images) == 0 {
		return nil
	}
	return c.Item.Images[c.Index]
}

// FrameDescription resolves the caption of the current frame: the
// image's localized description, else the item's localized description,
// else the item's native description.
func (c *Carousel) FrameDescription(english bool) string {
	if img := c.Current(); img != nil {
		if desc := img.LocalizedDescription(english); desc != "" {
			return desc
		}
	}
	if desc := c.Item.LocalizedDescription(english); desc != "" {
		return desc
	}
	return c.Item.Description
}

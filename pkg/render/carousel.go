package render

import "github.com/wanderlabs/pushkit/pkg/richpush"

// Carousel is the interaction controller for CAROUSEL notifications. The
// index is clamped to [0, len(items)-1] and never wraps; prev/next at the
// bounds are no-ops so the caller can disable the controls via
// CanPrev/CanNext.
type Carousel struct {
	payload *richpush.CarouselPayload
	index   int
}

func (*Carousel) Kind() richpush.Type { return richpush.TypeCarousel }

// NewCarousel creates a controller positioned on the first item.
func NewCarousel(p *richpush.CarouselPayload) (*Carousel, error) {
	if p == nil || len(p.Items) == 0 {
		return nil, ErrNilPayload
	}
	return &Carousel{payload: p}, nil
}

// Title returns the carousel heading.
func (c *Carousel) Title() string { return c.payload.Title }

// Index returns the current position.
func (c *Carousel) Index() int { return c.index }

// Len returns the number of items.
func (c *Carousel) Len() int { return len(c.payload.Items) }

// Current returns the item at the current position.
func (c *Carousel) Current() richpush.CarouselItem {
	return c.payload.Items[c.index]
}

// Next advances one item, stopping at the last. Returns the new index.
func (c *Carousel) Next() int {
	if c.CanNext() {
		c.index++
	}
	return c.index
}

// Prev steps back one item, stopping at the first. Returns the new index.
func (c *Carousel) Prev() int {
	if c.CanPrev() {
		c.index--
	}
	return c.index
}

// SetIndex jumps to an item, clamping out-of-range values to the bounds.
// Used by the dot indicator.
func (c *Carousel) SetIndex(i int) int {
	switch {
	case i < 0:
		c.index = 0
	case i >= c.Len():
		c.index = c.Len() - 1
	default:
		c.index = i
	}
	return c.index
}

// CanNext reports whether the current item is not the last.
func (c *Carousel) CanNext() bool { return c.index < c.Len()-1 }

// CanPrev reports whether the current item is not the first.
func (c *Carousel) CanPrev() bool { return c.index > 0 }

// Dots returns the indicator state: one entry per item, true at the
// current position.
func (c *Carousel) Dots() []bool {
	dots := make([]bool, c.Len())
	dots[c.index] = true
	return dots
}

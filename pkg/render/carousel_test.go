package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlabs/pushkit/pkg/render"
	"github.com/wanderlabs/pushkit/pkg/richpush"
)

func carouselPayload(n int) *richpush.CarouselPayload {
	items := make([]richpush.CarouselItem, n)
	for i := range items {
		items[i] = richpush.CarouselItem{
			Title:    "Item " + string(rune('A'+i)),
			ImageURL: "https://cdn.example.com/item.jpg",
		}
	}
	return &richpush.CarouselPayload{Title: "New arrivals", Items: items}
}

func TestNewCarousel(t *testing.T) {
	t.Parallel()

	t.Run("starts on first item", func(t *testing.T) {
		t.Parallel()

		c, err := render.NewCarousel(carouselPayload(3))
		require.NoError(t, err)

		assert.Equal(t, 0, c.Index())
		assert.Equal(t, 3, c.Len())
		assert.Equal(t, "Item A", c.Current().Title)
		assert.False(t, c.CanPrev())
		assert.True(t, c.CanNext())
	})

	t.Run("nil payload", func(t *testing.T) {
		t.Parallel()

		_, err := render.NewCarousel(nil)
		assert.ErrorIs(t, err, render.ErrNilPayload)
	})

	t.Run("empty items", func(t *testing.T) {
		t.Parallel()

		_, err := render.NewCarousel(&richpush.CarouselPayload{Title: "empty"})
		assert.ErrorIs(t, err, render.ErrNilPayload)
	})
}

func TestCarousel_NavigationStaysInBounds(t *testing.T) {
	t.Parallel()

	c, err := render.NewCarousel(carouselPayload(3))
	require.NoError(t, err)

	// Next past the last item never leaves the bounds.
	for range 10 {
		got := c.Next()
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, c.Len())
	}
	assert.Equal(t, 2, c.Index())
	assert.False(t, c.CanNext())
	assert.Equal(t, "Item C", c.Current().Title)

	// Prev past the first item never goes negative.
	for range 10 {
		got := c.Prev()
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, c.Len())
	}
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.CanPrev())
}

func TestCarousel_SingleItem(t *testing.T) {
	t.Parallel()

	c, err := render.NewCarousel(carouselPayload(1))
	require.NoError(t, err)

	assert.False(t, c.CanNext())
	assert.False(t, c.CanPrev())
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 0, c.Prev())
}

func TestCarousel_SetIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  int
		want int
	}{
		{name: "in range", set: 1, want: 1},
		{name: "negative clamps to first", set: -5, want: 0},
		{name: "past end clamps to last", set: 99, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := render.NewCarousel(carouselPayload(3))
			require.NoError(t, err)

			assert.Equal(t, tt.want, c.SetIndex(tt.set))
			assert.Equal(t, tt.want, c.Index())
		})
	}
}

func TestCarousel_Dots(t *testing.T) {
	t.Parallel()

	c, err := render.NewCarousel(carouselPayload(3))
	require.NoError(t, err)

	c.Next()

	assert.Equal(t, []bool{false, true, false}, c.Dots())
}

package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/listlayout/internal/core/estimate"
	"github.com/colonyops/listlayout/internal/core/layout"
)

func tenSquares(horizontal bool) []layout.Layout {
	var opts []layout.FlowOption
	if horizontal {
		opts = append(opts, layout.WithHorizontal())
	}
	f := layout.NewFlow(
		estimate.Fixed{Dimension: layout.Dimension{Width: 100, Height: 100}},
		layout.Dimension{Width: 300, Height: 300},
		opts...,
	)
	f.RelayoutFromIndex(0, 10)
	return f.Layouts()
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name       string
		offset     float64
		extent     float64
		horizontal bool
		want       Range
	}{
		{name: "first row", offset: 0, extent: 100, want: Range{First: 0, Last: 2}},
		{name: "straddles rows", offset: 150, extent: 100, want: Range{First: 3, Last: 8}},
		{name: "last row", offset: 300, extent: 500, want: Range{First: 9, Last: 9}},
		{name: "past content", offset: 1000, extent: 100, want: emptyRange},
		{name: "zero extent", offset: 0, extent: 0, want: emptyRange},
		{name: "horizontal columns", offset: 120, extent: 50, horizontal: true, want: Range{First: 3, Last: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleRange(tenSquares(tt.horizontal), tt.offset, tt.extent, tt.horizontal)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisibleRange_ShortItemInTallRow(t *testing.T) {
	layouts := []layout.Layout{
		{X: 0, Y: 0, Width: 100, Height: 20},
		{X: 100, Y: 0, Width: 100, Height: 200},
		{X: 0, Y: 200, Width: 100, Height: 50},
	}

	got := VisibleRange(layouts, 100, 50, false)

	assert.Equal(t, Range{First: 0, Last: 1}, got)
}

func TestVisibleRange_Empty(t *testing.T) {
	assert.True(t, VisibleRange(nil, 0, 100, false).Empty())
}

func TestRange(t *testing.T) {
	r := Range{First: 2, Last: 4}

	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))
	assert.Equal(t, 0, emptyRange.Len())
	assert.False(t, emptyRange.Contains(0))
}

func TestClampOffset(t *testing.T) {
	assert.Equal(t, 0.0, ClampOffset(-20, 100, 500))
	assert.Equal(t, 400.0, ClampOffset(450, 100, 500))
	assert.Equal(t, 0.0, ClampOffset(10, 600, 500))
	assert.Equal(t, 250.0, ClampOffset(250, 100, 500))
}

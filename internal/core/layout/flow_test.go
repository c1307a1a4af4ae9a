package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sizes is a test provider backed by a slice of estimates.
type sizes []Dimension

func (s sizes) ItemType(int) string { return "" }

func (s sizes) EstimatedDimension(_ string, dim *Dimension, index int) {
	*dim = s[index%len(s)]
}

// countingProvider records how often each index was estimated.
type countingProvider struct {
	dim   Dimension
	calls map[int]int
}

func newCountingProvider(dim Dimension) *countingProvider {
	return &countingProvider{dim: dim, calls: map[int]int{}}
}

func (c *countingProvider) ItemType(int) string { return "" }

func (c *countingProvider) EstimatedDimension(_ string, dim *Dimension, index int) {
	c.calls[index]++
	*dim = c.dim
}

func square(n float64) Dimension {
	return Dimension{Width: n, Height: n}
}

func TestFlow_VerticalSingleRow(t *testing.T) {
	f := NewFlow(sizes{square(100)}, Dimension{Width: 300, Height: 500})

	f.RelayoutFromIndex(0, 3)

	want := []Layout{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 100, Y: 0, Width: 100, Height: 100},
		{X: 200, Y: 0, Width: 100, Height: 100},
	}
	assert.Equal(t, want, f.Layouts())
	assert.Equal(t, Dimension{Width: 300, Height: 100}, f.ContentDimension())
}

func TestFlow_VerticalWrapsToNextRow(t *testing.T) {
	f := NewFlow(sizes{square(100)}, Dimension{Width: 300, Height: 500})

	f.RelayoutFromIndex(0, 3)
	f.RelayoutFromIndex(3, 4)

	require.Len(t, f.Layouts(), 4)
	assert.Equal(t, Layout{X: 0, Y: 100, Width: 100, Height: 100}, f.Layouts()[3])
	assert.Equal(t, Dimension{Width: 300, Height: 200}, f.ContentDimension())
}

func TestFlow_Horizontal(t *testing.T) {
	f := NewFlow(sizes{square(100)}, Dimension{Width: 500, Height: 250}, WithHorizontal())

	f.RelayoutFromIndex(0, 3)

	want := []Layout{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 0, Y: 100, Width: 100, Height: 100},
		{X: 100, Y: 0, Width: 100, Height: 100},
	}
	assert.Equal(t, want, f.Layouts())
	assert.Equal(t, Dimension{Width: 200, Height: 250}, f.ContentDimension())
	assert.True(t, f.Horizontal())
}

func TestFlow_RowExtentIsTallestItem(t *testing.T) {
	provider := sizes{
		{Width: 100, Height: 40},
		{Width: 100, Height: 90},
		{Width: 100, Height: 60},
		{Width: 200, Height: 10},
	}
	f := NewFlow(provider, Dimension{Width: 300, Height: 500})

	f.RelayoutFromIndex(0, 4)

	assert.Equal(t, 90.0, f.Layouts()[3].Y)
	assert.Equal(t, 0.0, f.Layouts()[3].X)
	assert.Equal(t, Dimension{Width: 300, Height: 100}, f.ContentDimension())
}

func TestFlow_ClampsCrossAxis(t *testing.T) {
	tests := []struct {
		name      string
		opts      []FlowOption
		window    Dimension
		item      Dimension
		wantBound func(Layout) float64
		wantCross float64
	}{
		{
			name:      "vertical clamps width",
			window:    Dimension{Width: 300, Height: 500},
			item:      Dimension{Width: 1000, Height: 50},
			wantBound: func(l Layout) float64 { return l.Width },
			wantCross: 300,
		},
		{
			name:      "horizontal clamps height",
			opts:      []FlowOption{WithHorizontal()},
			window:    Dimension{Width: 300, Height: 500},
			item:      Dimension{Width: 50, Height: 1000},
			wantBound: func(l Layout) float64 { return l.Height },
			wantCross: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlow(sizes{tt.item}, tt.window, tt.opts...)

			f.RelayoutFromIndex(0, 5)

			for i, rec := range f.Layouts() {
				assert.Equal(t, tt.wantCross, tt.wantBound(rec), "record %d", i)
			}
		})
	}
}

func TestFlow_OversizedItemsEachGetOwnRow(t *testing.T) {
	provider := sizes{
		{Width: 100, Height: 10},
		{Width: 5000, Height: 20},
		{Width: 100, Height: 30},
	}
	f := NewFlow(provider, Dimension{Width: 300, Height: 500})

	f.RelayoutFromIndex(0, 3)

	recs := f.Layouts()
	assert.Equal(t, Point{X: 0, Y: 0}, recs[0].Offset())
	assert.Equal(t, Point{X: 0, Y: 10}, recs[1].Offset())
	assert.Equal(t, Point{X: 0, Y: 30}, recs[2].Offset())
	assert.Equal(t, Dimension{Width: 300, Height: 60}, f.ContentDimension())
}

func TestFlow_CoverageForAnyCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 31, 100} {
		f := NewFlow(sizes{{Width: 70, Height: 30}, {Width: 120, Height: 45}}, Dimension{Width: 320, Height: 480})
		f.RelayoutFromIndex(0, n)
		assert.Len(t, f.Layouts(), n)
	}
}

func TestFlow_NegativeCountClearsStore(t *testing.T) {
	f := NewFlow(sizes{square(10)}, Dimension{Width: 100, Height: 100})
	f.RelayoutFromIndex(0, 5)

	f.RelayoutFromIndex(0, -3)

	assert.Empty(t, f.Layouts())
	assert.Equal(t, Dimension{Width: 100, Height: 0}, f.ContentDimension())
}

func TestFlow_RowsArePackedWithoutGaps(t *testing.T) {
	provider := sizes{
		{Width: 80, Height: 20},
		{Width: 130, Height: 60},
		{Width: 45, Height: 35},
		{Width: 200, Height: 15},
		{Width: 10, Height: 10},
	}

	for _, horizontal := range []bool{false, true} {
		var opts []FlowOption
		if horizontal {
			opts = append(opts, WithHorizontal())
		}
		f := NewFlow(provider, Dimension{Width: 250, Height: 250}, opts...)
		f.RelayoutFromIndex(0, 40)

		main := func(l Layout) float64 { return l.Y }
		cross := func(l Layout) float64 { return l.X }
		crossExt := func(l Layout) float64 { return l.Width }
		if horizontal {
			main, cross, crossExt = func(l Layout) float64 { return l.X }, func(l Layout) float64 { return l.Y }, func(l Layout) float64 { return l.Height }
		}

		recs := f.Layouts()
		for i := 1; i < len(recs); i++ {
			prev, cur := recs[i-1], recs[i]
			if main(prev) == main(cur) {
				assert.Equal(t, cross(prev)+crossExt(prev), cross(cur), "horizontal=%v record %d", horizontal, i)
			} else {
				assert.Greater(t, main(cur), main(prev))
				assert.Equal(t, 0.0, cross(cur))
			}
		}
	}
}

func TestFlow_Idempotent(t *testing.T) {
	provider := sizes{{Width: 70, Height: 30}, {Width: 120, Height: 45}, {Width: 33, Height: 90}}
	f := NewFlow(provider, Dimension{Width: 320, Height: 480})

	f.RelayoutFromIndex(0, 25)
	first := append([]Layout(nil), f.Layouts()...)
	firstContent := f.ContentDimension()

	f.RelayoutFromIndex(0, 25)

	assert.Equal(t, first, f.Layouts())
	assert.Equal(t, firstContent, f.ContentDimension())
}

func TestFlow_Truncates(t *testing.T) {
	f := NewFlow(sizes{square(100)}, Dimension{Width: 300, Height: 500})
	f.RelayoutFromIndex(0, 10)

	f.RelayoutFromIndex(0, 4)

	assert.Len(t, f.Layouts(), 4)
	assert.Equal(t, Dimension{Width: 300, Height: 200}, f.ContentDimension())
}

func TestFlow_TruncateFromTail(t *testing.T) {
	f := NewFlow(sizes{square(100)}, Dimension{Width: 300, Height: 500})
	f.RelayoutFromIndex(0, 6)

	f.RelayoutFromIndex(6, 3)

	assert.Len(t, f.Layouts(), 3)
	assert.Equal(t, Dimension{Width: 300, Height: 100}, f.ContentDimension())
}

func TestFlow_RestartsAtRowBoundary(t *testing.T) {
	p := newCountingProvider(square(100))
	f := NewFlow(p, Dimension{Width: 300, Height: 500})
	f.RelayoutFromIndex(0, 9)
	clear(p.calls)

	// index 5 sits in the second row (3, 4, 5); the walk back from 4 stops at 3.
	f.RelayoutFromIndex(5, 9)

	assert.Zero(t, p.calls[2])
	for i := 3; i < 9; i++ {
		assert.Equal(t, 1, p.calls[i], "index %d", i)
	}
	assert.Equal(t, Dimension{Width: 300, Height: 300}, f.ContentDimension())
}

func TestFlow_RestartFromRowStartUsesPreviousRow(t *testing.T) {
	p := newCountingProvider(square(100))
	f := NewFlow(p, Dimension{Width: 300, Height: 500})
	f.RelayoutFromIndex(0, 9)
	clear(p.calls)

	// index 6 starts the third row; the walk begins at 5 and stops at 3.
	f.RelayoutFromIndex(6, 9)

	assert.Zero(t, p.calls[2])
	assert.Equal(t, 1, p.calls[3])
}

func TestFlow_HorizontalRestartsAtColumnAndTruncates(t *testing.T) {
	p := newCountingProvider(square(100))
	f := NewFlow(p, Dimension{Width: 500, Height: 250}, WithHorizontal())
	f.RelayoutFromIndex(0, 9)
	require.Equal(t, Dimension{Width: 500, Height: 250}, f.ContentDimension())
	clear(p.calls)

	// columns hold two items; index 5 shares a column with 4.
	f.RelayoutFromIndex(5, 7)

	assert.Equal(t, map[int]int{4: 1, 5: 1, 6: 1}, p.calls)
	require.Len(t, f.Layouts(), 7)
	assert.Equal(t, Point{X: 200, Y: 0}, f.Layouts()[4].Offset())
	assert.Equal(t, Point{X: 300, Y: 0}, f.Layouts()[6].Offset())
	assert.Equal(t, Dimension{Width: 400, Height: 250}, f.ContentDimension())
}

func TestFlow_StartIndexPastEnd(t *testing.T) {
	f := NewFlow(sizes{square(100)}, Dimension{Width: 300, Height: 500})
	f.RelayoutFromIndex(0, 2)

	f.RelayoutFromIndex(50, 5)

	require.Len(t, f.Layouts(), 5)
	assert.Equal(t, Point{X: 200, Y: 0}, f.Layouts()[2].Offset())
	assert.Equal(t, Point{X: 100, Y: 100}, f.Layouts()[4].Offset())
	assert.Equal(t, Dimension{Width: 300, Height: 200}, f.ContentDimension())
}

func TestFlow_OverridePersists(t *testing.T) {
	f := NewFlow(sizes{square(100)}, Dimension{Width: 300, Height: 500})
	f.RelayoutFromIndex(0, 6)

	f.OverrideLayout(1, Dimension{Width: 150, Height: 40})

	// Override alone does not move anything downstream.
	assert.Equal(t, Point{X: 200, Y: 0}, f.Layouts()[2].Offset())

	for range 3 {
		f.RelayoutFromIndex(0, 6)
	}

	rec := f.Layouts()[1]
	assert.True(t, rec.IsOverridden)
	assert.Equal(t, Dimension{Width: 150, Height: 40}, rec.Dimension())
	// 100 + 150 leaves 50, so item 2 wraps.
	assert.Equal(t, Point{X: 0, Y: 100}, f.Layouts()[2].Offset())
}

func TestFlow_OverrideIsClampedOnRelayout(t *testing.T) {
	f := NewFlow(sizes{square(100)}, Dimension{Width: 300, Height: 500})
	f.RelayoutFromIndex(0, 2)

	f.OverrideLayout(0, Dimension{Width: 900, Height: 40})
	f.RelayoutFromIndex(0, 2)

	assert.Equal(t, 300.0, f.Layouts()[0].Width)
	assert.Equal(t, Point{X: 0, Y: 40}, f.Layouts()[1].Offset())
}

func TestFlow_OverrideMissingIndexIsNoop(t *testing.T) {
	f := NewFlow(sizes{square(100)}, Dimension{Width: 300, Height: 500})
	f.RelayoutFromIndex(0, 2)

	f.OverrideLayout(7, square(10))
	f.OverrideLayout(-1, square(10))

	assert.Len(t, f.Layouts(), 2)
	for _, rec := range f.Layouts() {
		assert.False(t, rec.IsOverridden)
	}
}

type typedSizes struct {
	types []string
	dims  map[string]Dimension
}

func (p *typedSizes) ItemType(index int) string { return p.types[index] }

func (p *typedSizes) EstimatedDimension(itemType string, dim *Dimension, _ int) {
	*dim = p.dims[itemType]
}

func TestFlow_OverrideDroppedWhenTypeChanges(t *testing.T) {
	p := &typedSizes{
		types: []string{"card", "card"},
		dims: map[string]Dimension{
			"card":   square(100),
			"banner": {Width: 300, Height: 20},
		},
	}
	f := NewFlow(p, Dimension{Width: 300, Height: 500})
	f.RelayoutFromIndex(0, 2)
	f.OverrideLayout(1, square(50))

	p.types[1] = "banner"
	f.RelayoutFromIndex(0, 2)

	rec := f.Layouts()[1]
	assert.Equal(t, "banner", rec.Type)
	assert.Equal(t, Dimension{Width: 300, Height: 20}, rec.Dimension())
}

func TestFlow_WarmStart(t *testing.T) {
	seed := []Layout{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 100, Y: 0, Width: 120, Height: 80, IsOverridden: true},
	}
	f := NewFlow(sizes{square(100)}, Dimension{Width: 300, Height: 500}, WithLayouts(seed))

	assert.Equal(t, Dimension{}, f.ContentDimension())
	p, err := f.OffsetForIndex(1)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 100, Y: 0}, p)

	f.RelayoutFromIndex(2, 3)

	require.Len(t, f.Layouts(), 3)
	assert.Equal(t, Dimension{Width: 120, Height: 80}, f.Layouts()[1].Dimension())
	assert.Equal(t, Point{X: 0, Y: 100}, f.Layouts()[2].Offset())
}

func TestFlow_NegativeEstimatesAreZeroed(t *testing.T) {
	f := NewFlow(ProviderFunc(func(int) Dimension { return Dimension{Width: -10, Height: -5} }), Dimension{Width: 100, Height: 100})

	f.RelayoutFromIndex(0, 3)

	for _, rec := range f.Layouts() {
		assert.Equal(t, Dimension{}, rec.Dimension())
	}
}

func TestFlow_StyleOverridesDefault(t *testing.T) {
	f := NewFlow(sizes{square(100)}, Dimension{Width: 300, Height: 500})
	f.RelayoutFromIndex(0, 1)

	assert.Nil(t, f.StyleOverridesForIndex(0))
}

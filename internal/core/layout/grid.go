package layout

import "github.com/rs/zerolog"

// Grid packs items left-to-right into rows of uniform-width columns and wraps
// downward. Only heights are estimated when a column span is configured; the
// width of every item is the window width divided by the span.
//
// With a column span of zero the grid falls back to each item's estimated
// width, which makes it behave like a vertical Flow.
type Grid struct {
	packer
	provider   Provider
	columnSpan int
}

var _ Manager = (*Grid)(nil)

// GridOption configures a Grid engine.
type GridOption func(*Grid)

// WithColumnSpan sets the number of fixed-width columns per row. Values below
// one disable the uniform width.
func WithColumnSpan(span int) GridOption {
	return func(g *Grid) {
		g.columnSpan = max(span, 0)
	}
}

// WithGridLayouts warm-starts the engine from previously computed records.
func WithGridLayouts(layouts []Layout) GridOption {
	return func(g *Grid) {
		g.store = NewStore(layouts)
	}
}

// WithGridLogger sets the logger used for relayout debug events.
func WithGridLogger(l zerolog.Logger) GridOption {
	return func(g *Grid) {
		g.log = l
	}
}

// NewGrid returns a grid engine bounded by window.
func NewGrid(provider Provider, window Dimension, opts ...GridOption) *Grid {
	g := &Grid{
		packer: packer{
			Base:   newBase(nil),
			window: window.nonNegative(),
			log:    zerolog.Nop(),
		},
		provider: provider,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ColumnSpan returns the configured number of columns.
func (g *Grid) ColumnSpan() int {
	return g.columnSpan
}

// ColumnWidth returns the uniform column width, or 0 when no span is set.
func (g *Grid) ColumnWidth() float64 {
	if g.columnSpan <= 0 {
		return 0
	}
	return g.window.Width / float64(g.columnSpan)
}

// RelayoutFromIndex implements Manager.
func (g *Grid) RelayoutFromIndex(startIndex, itemCount int) {
	g.relayout(startIndex, itemCount, g.measure)
}

// StyleOverridesForIndex forces the uniform column width on renderers so a
// cell never draws wider than its column.
func (g *Grid) StyleOverridesForIndex(int) StyleOverrides {
	width := g.ColumnWidth()
	if width == 0 {
		return nil
	}
	return StyleOverrides{"width": width}
}

func (g *Grid) measure(index int) (string, Dimension) {
	itemType := g.provider.ItemType(index)

	var dim Dimension
	if rec, ok := g.store.At(index); ok && rec.IsOverridden && rec.Type == itemType {
		dim = rec.Dimension()
	} else {
		g.provider.EstimatedDimension(itemType, &dim, index)
	}

	if width := g.ColumnWidth(); width > 0 {
		dim.Width = width
	}
	return itemType, dim
}

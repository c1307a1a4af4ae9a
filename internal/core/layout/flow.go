package layout

import "github.com/rs/zerolog"

// Flow lays out variable-size items along the main axis and wraps to a new
// row (vertical) or column (horizontal) when the window's cross bound would
// be exceeded.
type Flow struct {
	packer
	provider Provider
}

var _ Manager = (*Flow)(nil)

// FlowOption configures a Flow engine.
type FlowOption func(*Flow)

// WithHorizontal packs items top-to-bottom within columns and wraps
// left-to-right. The default is vertical: rows left-to-right, wrapping
// downward.
func WithHorizontal() FlowOption {
	return func(f *Flow) {
		f.horizontal = true
	}
}

// WithLayouts warm-starts the engine from previously computed records. The
// engine takes ownership of the slice. Content dimension stays zero until the
// first relayout.
func WithLayouts(layouts []Layout) FlowOption {
	return func(f *Flow) {
		f.store = NewStore(layouts)
	}
}

// WithLogger sets the logger used for relayout debug events.
func WithLogger(l zerolog.Logger) FlowOption {
	return func(f *Flow) {
		f.log = l
	}
}

// NewFlow returns a flow engine bounded by window.
func NewFlow(provider Provider, window Dimension, opts ...FlowOption) *Flow {
	f := &Flow{
		packer: packer{
			Base:   newBase(nil),
			window: window.nonNegative(),
			log:    zerolog.Nop(),
		},
		provider: provider,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// RelayoutFromIndex implements Manager.
func (f *Flow) RelayoutFromIndex(startIndex, itemCount int) {
	f.relayout(startIndex, itemCount, f.measure)
}

// measure reuses an overridden record's size while the item type is
// unchanged, otherwise asks the provider.
func (f *Flow) measure(index int) (string, Dimension) {
	itemType := f.provider.ItemType(index)
	if rec, ok := f.store.At(index); ok && rec.IsOverridden && rec.Type == itemType {
		return itemType, rec.Dimension()
	}

	var dim Dimension
	f.provider.EstimatedDimension(itemType, &dim, index)
	return itemType, dim
}

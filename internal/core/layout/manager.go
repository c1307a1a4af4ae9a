package layout

// Manager is the contract every layout strategy provides to hosts.
//
// RelayoutFromIndex is the only compute-heavy operation; everything else is
// a cheap read. Calls that mutate (RelayoutFromIndex, OverrideLayout) must be
// serialized by the host, and reads must not overlap an in-flight relayout.
type Manager interface {
	// OffsetForIndex returns the position of the item at index, or an
	// *UnavailableError when index has not been laid out.
	OffsetForIndex(index int) (Point, error)

	// StyleOverridesForIndex returns presentational constraints a renderer
	// should force for the item at index. Nil means none.
	StyleOverridesForIndex(index int) StyleOverrides

	// ContentDimension returns the bounding box of all laid-out items.
	ContentDimension() Dimension

	// Layouts returns the live record store. Callers must treat it as
	// read-only.
	Layouts() []Layout

	// OverrideLayout records a measured size for an existing record. It does
	// not move any other item; call RelayoutFromIndex for that.
	OverrideLayout(index int, dim Dimension)

	// RelayoutFromIndex recomputes geometry from the nearest row or column
	// boundary at or before startIndex through itemCount-1, and resizes the
	// store to exactly itemCount records.
	RelayoutFromIndex(startIndex, itemCount int)
}

// Base carries the record store and the default implementations shared by
// every strategy. Strategies embed it and may shadow any of its methods.
type Base struct {
	store *Store
}

func newBase(records []Layout) Base {
	return Base{store: NewStore(records)}
}

// OffsetForIndex implements Manager.
func (b *Base) OffsetForIndex(index int) (Point, error) {
	rec, ok := b.store.At(index)
	if !ok {
		return Point{}, newUnavailableError(index, b.store.Len())
	}
	return rec.Offset(), nil
}

// StyleOverridesForIndex implements Manager. The default has no overrides.
func (b *Base) StyleOverridesForIndex(int) StyleOverrides {
	return nil
}

// Layouts implements Manager.
func (b *Base) Layouts() []Layout {
	return b.store.Records()
}

// OverrideLayout implements Manager. Unknown indices are ignored.
func (b *Base) OverrideLayout(index int, dim Dimension) {
	rec, ok := b.store.At(index)
	if !ok {
		return
	}
	dim = dim.nonNegative()
	rec.Width = dim.Width
	rec.Height = dim.Height
	rec.IsOverridden = true
}

// Package layout computes and incrementally maintains item geometry for
// virtualized lists and grids.
//
// Two strategies are provided: Flow packs variable-size items along a main
// axis and wraps at the window boundary, Grid packs uniform-width columns into
// rows. Both satisfy Manager and share the same record store and restart
// behavior, so a host can swap them without changing how it drives layout.
package layout

// Dimension is a width/height extent.
type Dimension struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is an absolute offset from the content origin (top-left).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout is the geometry record for a single item index.
type Layout struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Type is the item type the record was last laid out as. An override is
	// only honored while the item keeps the same type.
	Type string `json:"type,omitempty"`

	// IsOverridden is set once a host supplied a measured size that must be
	// trusted over future estimates.
	IsOverridden bool `json:"is_overridden"`
}

// Offset returns the record's position.
func (l Layout) Offset() Point {
	return Point{X: l.X, Y: l.Y}
}

// Dimension returns the record's size.
func (l Layout) Dimension() Dimension {
	return Dimension{Width: l.Width, Height: l.Height}
}

// StyleOverrides maps a style property name to the value a renderer should
// force for an item. A nil map means no overrides.
type StyleOverrides map[string]any

// nonNegative clamps both extents at zero.
func (d Dimension) nonNegative() Dimension {
	return Dimension{Width: max(d.Width, 0), Height: max(d.Height, 0)}
}

// Package estimate provides layout.Provider implementations that supply a
// priori item dimensions to the layout engines.
package estimate

import (
	"github.com/colonyops/listlayout/internal/core/layout"
)

// Fixed estimates every item at the same size.
type Fixed struct {
	Dimension layout.Dimension
}

var _ layout.Provider = Fixed{}

// ItemType implements layout.Provider. Fixed providers are untyped.
func (f Fixed) ItemType(int) string { return "" }

// EstimatedDimension implements layout.Provider.
func (f Fixed) EstimatedDimension(_ string, dim *layout.Dimension, _ int) {
	*dim = f.Dimension
}

// Func adapts a typed estimate function. Types yields the item type for an
// index and may be nil for untyped lists.
type Func struct {
	Types    func(index int) string
	Estimate func(itemType string, index int) layout.Dimension
}

var _ layout.Provider = Func{}

// ItemType implements layout.Provider.
func (f Func) ItemType(index int) string {
	if f.Types == nil {
		return ""
	}
	return f.Types(index)
}

// EstimatedDimension implements layout.Provider.
func (f Func) EstimatedDimension(itemType string, dim *layout.Dimension, index int) {
	*dim = f.Estimate(itemType, index)
}

// Package viewport answers visibility questions over a laid-out record store.
// It only reads layouts and never drives relayout.
package viewport

import (
	"sort"

	"github.com/colonyops/listlayout/internal/core/layout"
)

// Range is an inclusive span of item indices. It is empty when Last < First.
type Range struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// Empty reports whether the range holds no indices.
func (r Range) Empty() bool {
	return r.Last < r.First
}

// Contains reports whether index is inside the range.
func (r Range) Contains(index int) bool {
	return !r.Empty() && index >= r.First && index <= r.Last
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Last - r.First + 1
}

var emptyRange = Range{First: 0, Last: -1}

// VisibleRange returns the indices whose rows (or columns, when horizontal)
// intersect the main-axis window [offset, offset+extent). Main-axis
// coordinates are non-decreasing across the store, so both ends are found by
// binary search.
func VisibleRange(layouts []layout.Layout, offset, extent float64, horizontal bool) Range {
	if len(layouts) == 0 || extent <= 0 {
		return emptyRange
	}

	main := func(i int) float64 {
		if horizontal {
			return layouts[i].X
		}
		return layouts[i].Y
	}

	// first row that starts after offset; the row before it contains offset.
	after := sort.Search(len(layouts), func(i int) bool { return main(i) > offset })
	first := 0
	if after > 0 {
		rowStart := main(after - 1)
		first = sort.Search(len(layouts), func(i int) bool { return main(i) >= rowStart })
		if !rowReaches(layouts, first, after, offset, horizontal) {
			first = after
		}
	}

	end := offset + extent
	last := sort.Search(len(layouts), func(i int) bool { return main(i) >= end }) - 1

	if first > last {
		return emptyRange
	}
	return Range{First: first, Last: last}
}

// rowReaches reports whether any item in layouts[from:to] extends past offset
// along the main axis.
func rowReaches(layouts []layout.Layout, from, to int, offset float64, horizontal bool) bool {
	for _, l := range layouts[from:to] {
		start, ext := l.Y, l.Height
		if horizontal {
			start, ext = l.X, l.Width
		}
		if start+ext > offset {
			return true
		}
	}
	return false
}

// ClampOffset keeps a scroll offset inside [0, content-extent].
func ClampOffset(offset, extent, content float64) float64 {
	maxOffset := max(content-extent, 0)
	return min(max(offset, 0), maxOffset)
}

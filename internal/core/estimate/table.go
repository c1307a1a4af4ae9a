package estimate

import (
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/listlayout/internal/core/layout"
	"github.com/colonyops/listlayout/pkg/kv"
)

// Rule maps an item type, or a glob pattern over type names, to an estimate.
type Rule struct {
	Match     string
	Dimension layout.Dimension
}

// Table is a typed provider. Each index has an item type; estimates resolve
// by exact type name first, then by the first matching glob rule in order,
// then by the fallback. Resolutions are memoized per type.
//
// The item type list is owned by the host and must not be edited while a
// relayout is running.
type Table struct {
	types    []string
	exact    map[string]layout.Dimension
	patterns []Rule
	fallback layout.Dimension
	resolved *kv.Store[string, layout.Dimension]
}

var _ layout.Provider = (*Table)(nil)

// NewTable builds a table provider. Rules whose Match contains glob
// metacharacters are treated as patterns and must be valid doublestar
// patterns.
func NewTable(rules []Rule, fallback layout.Dimension, types []string) (*Table, error) {
	t := &Table{
		types:    slices.Clone(types),
		exact:    make(map[string]layout.Dimension, len(rules)),
		fallback: fallback,
		resolved: kv.New[string, layout.Dimension](),
	}

	for i, r := range rules {
		if !isPattern(r.Match) {
			if _, dup := t.exact[r.Match]; !dup {
				t.exact[r.Match] = r.Dimension
			}
			continue
		}
		if !doublestar.ValidatePattern(r.Match) {
			return nil, fmt.Errorf("rule %d: invalid pattern %q", i, r.Match)
		}
		t.patterns = append(t.patterns, r)
	}

	return t, nil
}

// isPattern reports whether s contains doublestar metacharacters.
func isPattern(s string) bool {
	for _, r := range s {
		switch r {
		case '*', '?', '[', '{', '\\':
			return true
		}
	}
	return false
}

// Len returns the number of items.
func (t *Table) Len() int {
	return len(t.types)
}

// Types returns a copy of the per-index item types.
func (t *Table) Types() []string {
	return slices.Clone(t.types)
}

// Insert adds an item of itemType at index, shifting later items. index is
// clamped to [0, Len()].
func (t *Table) Insert(index int, itemType string) {
	index = min(max(index, 0), len(t.types))
	t.types = slices.Insert(t.types, index, itemType)
}

// Remove deletes the item at index. Out of range indices are ignored.
func (t *Table) Remove(index int) {
	if index < 0 || index >= len(t.types) {
		return
	}
	t.types = slices.Delete(t.types, index, index+1)
}

// ItemType implements layout.Provider.
func (t *Table) ItemType(index int) string {
	if index < 0 || index >= len(t.types) {
		return ""
	}
	return t.types[index]
}

// EstimatedDimension implements layout.Provider.
func (t *Table) EstimatedDimension(itemType string, dim *layout.Dimension, _ int) {
	*dim = t.Resolve(itemType)
}

// Resolve returns the estimate for itemType.
func (t *Table) Resolve(itemType string) layout.Dimension {
	return t.resolved.GetOrCompute(itemType, t.lookup)
}

func (t *Table) lookup(itemType string) layout.Dimension {
	if dim, ok := t.exact[itemType]; ok {
		return dim
	}
	for _, r := range t.patterns {
		if doublestar.MatchUnvalidated(r.Match, itemType) {
			return r.Dimension
		}
	}
	return t.fallback
}

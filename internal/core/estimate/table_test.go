package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/listlayout/internal/core/layout"
)

func dim(w, h float64) layout.Dimension {
	return layout.Dimension{Width: w, Height: h}
}

func TestTable_Resolve(t *testing.T) {
	rules := []Rule{
		{Match: "card", Dimension: dim(100, 100)},
		{Match: "card-*", Dimension: dim(100, 140)},
		{Match: "{banner,hero}", Dimension: dim(300, 60)},
		{Match: "card-wide", Dimension: dim(200, 100)},
	}
	table, err := NewTable(rules, dim(50, 50), nil)
	require.NoError(t, err)

	tests := []struct {
		itemType string
		want     layout.Dimension
	}{
		{itemType: "card", want: dim(100, 100)},
		{itemType: "card-wide", want: dim(200, 100)},
		{itemType: "card-tall", want: dim(100, 140)},
		{itemType: "hero", want: dim(300, 60)},
		{itemType: "banner", want: dim(300, 60)},
		{itemType: "unknown", want: dim(50, 50)},
		{itemType: "", want: dim(50, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.itemType, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Resolve(tt.itemType))
		})
	}
}

func TestTable_FirstExactRuleWins(t *testing.T) {
	table, err := NewTable([]Rule{
		{Match: "row", Dimension: dim(10, 10)},
		{Match: "row", Dimension: dim(20, 20)},
	}, dim(0, 0), nil)
	require.NoError(t, err)

	assert.Equal(t, dim(10, 10), table.Resolve("row"))
}

func TestTable_InvalidPattern(t *testing.T) {
	_, err := NewTable([]Rule{{Match: "card-[", Dimension: dim(1, 1)}}, dim(0, 0), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestTable_ProviderContract(t *testing.T) {
	table, err := NewTable([]Rule{
		{Match: "header", Dimension: dim(300, 40)},
		{Match: "item", Dimension: dim(100, 80)},
	}, dim(0, 0), []string{"header", "item", "item"})
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, "item", table.ItemType(1))
	assert.Equal(t, "", table.ItemType(9))

	var got layout.Dimension
	table.EstimatedDimension(table.ItemType(0), &got, 0)
	assert.Equal(t, dim(300, 40), got)
}

func TestTable_InsertRemove(t *testing.T) {
	table, err := NewTable(nil, dim(10, 10), []string{"a", "b", "c"})
	require.NoError(t, err)

	table.Insert(1, "x")
	assert.Equal(t, []string{"a", "x", "b", "c"}, table.Types())

	table.Insert(99, "z")
	assert.Equal(t, []string{"a", "x", "b", "c", "z"}, table.Types())

	table.Remove(0)
	table.Remove(42)
	assert.Equal(t, []string{"x", "b", "c", "z"}, table.Types())
}

func TestTable_DrivesFlowLayout(t *testing.T) {
	table, err := NewTable([]Rule{
		{Match: "header", Dimension: dim(300, 40)},
		{Match: "tile-*", Dimension: dim(100, 100)},
	}, dim(0, 0), []string{"header", "tile-a", "tile-b", "tile-c", "tile-d"})
	require.NoError(t, err)

	f := layout.NewFlow(table, dim(300, 600))
	f.RelayoutFromIndex(0, table.Len())

	recs := f.Layouts()
	assert.Equal(t, "header", recs[0].Type)
	assert.Equal(t, layout.Point{X: 0, Y: 40}, recs[1].Offset())
	assert.Equal(t, layout.Point{X: 0, Y: 140}, recs[4].Offset())
	assert.Equal(t, dim(300, 240), f.ContentDimension())
}

func TestFixedAndFunc(t *testing.T) {
	var got layout.Dimension

	Fixed{Dimension: dim(7, 9)}.EstimatedDimension("", &got, 3)
	assert.Equal(t, dim(7, 9), got)

	fn := Func{
		Types: func(i int) string {
			if i%2 == 0 {
				return "even"
			}
			return "odd"
		},
		Estimate: func(itemType string, i int) layout.Dimension {
			if itemType == "even" {
				return dim(float64(i), 1)
			}
			return dim(0, float64(i))
		},
	}
	fn.EstimatedDimension(fn.ItemType(4), &got, 4)
	assert.Equal(t, dim(4, 1), got)
	assert.Equal(t, "", Func{}.ItemType(1))
}

package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/listlayout/internal/core/layout"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// noOwner marks a canvas cell that no item covers.
const noOwner = -1

// Projection maps layout units onto terminal cells. Scale is cells per layout
// unit along x; y uses Scale/cellAspect so boxes keep their proportions.
type Projection struct {
	Scale      float64
	Horizontal bool
	Offset     float64 // scroll position along the main axis, in layout units
}

// NewProjection fits the window's cross axis into the given cell budget.
func NewProjection(window layout.Dimension, cols, rows int, horizontal bool) Projection {
	p := Projection{Horizontal: horizontal, Scale: 1}
	switch {
	case horizontal && window.Height > 0:
		p.Scale = float64(rows) * cellAspect / window.Height
	case !horizontal && window.Width > 0:
		p.Scale = float64(cols) / window.Width
	}
	return p
}

func (p Projection) sx() float64 { return p.Scale }
func (p Projection) sy() float64 { return p.Scale / cellAspect }

// Extent returns how many layout units of the main axis fit in the cell budget.
func (p Projection) Extent(cols, rows int) float64 {
	if p.Scale <= 0 {
		return 0
	}
	if p.Horizontal {
		return float64(cols) / p.sx()
	}
	return float64(rows) / p.sy()
}

// Rect returns the inclusive cell rectangle covered by l.
func (p Projection) Rect(l layout.Layout) (x0, y0, x1, y1 int) {
	x, y := l.X, l.Y
	if p.Horizontal {
		x -= p.Offset
	} else {
		y -= p.Offset
	}

	x0 = int(math.Round(x * p.sx()))
	x1 = int(math.Round((x+l.Width)*p.sx())) - 1
	y0 = int(math.Round(y * p.sy()))
	y1 = int(math.Round((y+l.Height)*p.sy())) - 1
	return x0, y0, max(x1, x0), max(y1, y0)
}

// Canvas is a fixed-size grid of runes, each tagged with the item that drew it.
type Canvas struct {
	cols, rows int
	cells      []rune
	owner      []int
}

// NewCanvas returns a blank canvas.
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	c := &Canvas{
		cols:  cols,
		rows:  rows,
		cells: make([]rune, cols*rows),
		owner: make([]int, cols*rows),
	}
	for i := range c.cells {
		c.cells[i] = ' '
		c.owner[i] = noOwner
	}
	return c
}

func (c *Canvas) set(x, y int, r rune, owner int) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.cells[y*c.cols+x] = r
	c.owner[y*c.cols+x] = owner
}

// At returns the rune and owner at a cell. Out of bounds cells are blank.
func (c *Canvas) At(x, y int) (rune, int) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return ' ', noOwner
	}
	return c.cells[y*c.cols+x], c.owner[y*c.cols+x]
}

// Box outlines the inclusive rectangle and writes label inside its top-left
// corner. Rectangles one cell thin are filled instead.
func (c *Canvas) Box(x0, y0, x1, y1, owner int, label string) {
	if x0 == x1 || y0 == y1 {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				c.set(x, y, '█', owner)
			}
		}
		return
	}

	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─', owner)
		c.set(x, y1, '─', owner)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│', owner)
		c.set(x1, y, '│', owner)
	}
	c.set(x0, y0, '┌', owner)
	c.set(x1, y0, '┐', owner)
	c.set(x0, y1, '└', owner)
	c.set(x1, y1, '┘', owner)

	// label goes inside when there is room, else on the top edge
	ly := y0 + 1
	if y1-y0 < 2 {
		ly = y0
	}
	for i, r := range []rune(label) {
		x := x0 + 1 + i
		if x >= x1 {
			break
		}
		c.set(x, ly, r, owner)
	}
}

// Render joins the canvas into lines, styling each run of cells with the
// style of the item that owns it.
func (c *Canvas) Render(styleFor func(owner int) lipgloss.Style) string {
	var b strings.Builder
	for y := range c.rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= c.cols; x++ {
			if x < c.cols && c.owner[y*c.cols+x] == c.owner[y*c.cols+start] {
				continue
			}
			run := string(c.cells[y*c.cols+start : y*c.cols+x])
			if o := c.owner[y*c.cols+start]; o == noOwner || styleFor == nil {
				b.WriteString(run)
			} else {
				b.WriteString(styleFor(o).Render(run))
			}
			start = x
		}
	}
	return b.String()
}

// Draw rasterizes layouts[first..last] through p.
func Draw(layouts []layout.Layout, first, last int, p Projection, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	for i := max(first, 0); i <= last && i < len(layouts); i++ {
		x0, y0, x1, y1 := p.Rect(layouts[i])
		c.Box(x0, y0, x1, y1, i, strconv.Itoa(i))
	}
	return c
}

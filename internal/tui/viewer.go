// Package tui implements the Bubble Tea viewer that draws a scenario's layout
// and lets the user scroll it, simulate measured sizes and edit the item list.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/listlayout/internal/core/config"
	"github.com/colonyops/listlayout/internal/core/layout"
	"github.com/colonyops/listlayout/internal/core/styles"
	"github.com/colonyops/listlayout/internal/core/viewport"
	"github.com/colonyops/listlayout/internal/scenario"
)

const (
	// header, two border rows, status bar, help line
	chromeRows = 5
	// left and right border
	chromeCols = 2

	scrollDivisor = 8
	growFactor    = 1.25
)

// Option configures a Viewer.
type Option func(*Viewer)

// WithFitToTerminal resizes the layout window to the terminal on every
// resize, at unitsPerCell layout units per cell column.
func WithFitToTerminal(unitsPerCell float64) Option {
	return func(v *Viewer) {
		v.unitsPerCell = unitsPerCell
	}
}

// WithLogger sets the viewer's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(v *Viewer) {
		v.log = l
	}
}

// Viewer is the Bubble Tea model for the layout viewer.
type Viewer struct {
	svc  *scenario.Service
	keys keyMap
	help help.Model
	log  zerolog.Logger

	width, height int
	unitsPerCell  float64

	offset   float64
	selected int
	status   string
}

// NewViewer returns a viewer over an already laid out service.
func NewViewer(svc *scenario.Service, opts ...Option) *Viewer {
	v := &Viewer{
		svc:  svc,
		keys: defaultKeyMap(),
		help: help.New(),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Init implements tea.Model.
func (v *Viewer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *Viewer) handleKey(msg tea.KeyMsg) tea.Cmd {
	step := v.extent() / scrollDivisor

	switch {
	case key.Matches(msg, v.keys.Quit):
		return tea.Quit
	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
		v.fit()
	case key.Matches(msg, v.keys.Down):
		v.scrollTo(v.offset + step)
	case key.Matches(msg, v.keys.Up):
		v.scrollTo(v.offset - step)
	case key.Matches(msg, v.keys.PageDown):
		v.scrollTo(v.offset + v.extent())
	case key.Matches(msg, v.keys.PageUp):
		v.scrollTo(v.offset - v.extent())
	case key.Matches(msg, v.keys.Top):
		v.scrollTo(0)
	case key.Matches(msg, v.keys.Bottom):
		v.scrollTo(v.content())
	case key.Matches(msg, v.keys.Next):
		v.selectItem(v.selected + 1)
	case key.Matches(msg, v.keys.Prev):
		v.selectItem(v.selected - 1)
	case key.Matches(msg, v.keys.Grow):
		v.scaleSelected(growFactor)
	case key.Matches(msg, v.keys.Shrink):
		v.scaleSelected(1 / growFactor)
	case key.Matches(msg, v.keys.Insert):
		v.insertAfterSelected()
	case key.Matches(msg, v.keys.Delete):
		v.removeSelected()
	}
	return nil
}

func (v *Viewer) resize(width, height int) {
	v.width, v.height = width, height
	v.help.Width = width
	v.fit()
}

// fit resizes the layout window to the canvas in fit mode and re-clamps the
// scroll offset. An empty canvas keeps the previous window.
func (v *Viewer) fit() {
	if cols, rows := v.canvasSize(); v.unitsPerCell > 0 && cols > 0 && rows > 0 {
		v.svc.Resize(layout.Dimension{
			Width:  float64(cols) * v.unitsPerCell,
			Height: float64(rows) * v.unitsPerCell * cellAspect,
		})
		v.log.Debug().Int("cols", cols).Int("rows", rows).Msg("fit window to terminal")
	}
	v.scrollTo(v.offset)
}

// canvasSize is the terminal minus the chrome, including any extra lines the
// expanded help wraps onto.
func (v *Viewer) canvasSize() (cols, rows int) {
	helpRows := strings.Count(v.help.View(v.keys), "\n")
	return max(v.width-chromeCols, 0), max(v.height-chromeRows-helpRows, 0)
}

func (v *Viewer) projection() Projection {
	cols, rows := v.canvasSize()
	p := NewProjection(v.svc.Window(), cols, rows, v.svc.Horizontal())
	p.Offset = v.offset
	return p
}

// extent is the visible length of the scroll axis in layout units.
func (v *Viewer) extent() float64 {
	cols, rows := v.canvasSize()
	return v.projection().Extent(cols, rows)
}

func (v *Viewer) content() float64 {
	c := v.svc.Manager().ContentDimension()
	if v.svc.Horizontal() {
		return c.Width
	}
	return c.Height
}

func (v *Viewer) scrollTo(offset float64) {
	v.offset = viewport.ClampOffset(offset, v.extent(), v.content())
}

func (v *Viewer) selectItem(index int) {
	n := len(v.svc.Manager().Layouts())
	if n == 0 {
		v.selected = 0
		return
	}
	v.selected = min(max(index, 0), n-1)
	v.reveal(v.selected)
}

// reveal scrolls the minimum distance that brings index fully into view.
func (v *Viewer) reveal(index int) {
	pt, err := v.svc.Manager().OffsetForIndex(index)
	if err != nil {
		v.status = err.Error()
		return
	}
	rec := v.svc.Manager().Layouts()[index]

	start, size := pt.Y, rec.Height
	if v.svc.Horizontal() {
		start, size = pt.X, rec.Width
	}

	extent := v.extent()
	switch {
	case start < v.offset:
		v.scrollTo(start)
	case start+size > v.offset+extent:
		v.scrollTo(start + size - extent)
	}
}

// scaleSelected reports a measured size for the selected item, grown or
// shrunk along the scroll axis, as a host would after rendering it.
func (v *Viewer) scaleSelected(factor float64) {
	layouts := v.svc.Manager().Layouts()
	if v.selected >= len(layouts) {
		return
	}
	dim := layouts[v.selected].Dimension()
	if v.svc.Horizontal() {
		dim.Width *= factor
	} else {
		dim.Height *= factor
	}

	v.svc.Measure([]scenario.Measurement{{Index: v.selected, Width: dim.Width, Height: dim.Height}})
	v.status = fmt.Sprintf("measured item %d at %.0fx%.0f", v.selected, dim.Width, dim.Height)
	v.scrollTo(v.offset)
}

func (v *Viewer) insertAfterSelected() {
	itemType := "item"
	if layouts := v.svc.Manager().Layouts(); v.selected < len(layouts) {
		itemType = layouts[v.selected].Type
	}
	index := min(v.selected+1, v.svc.Count())

	v.svc.Insert(index, itemType)
	v.status = fmt.Sprintf("inserted %s at %d", itemType, index)
	v.selectItem(index)
}

func (v *Viewer) removeSelected() {
	if v.svc.Count() == 0 {
		return
	}
	v.svc.Remove(v.selected)
	v.status = fmt.Sprintf("removed item %d", v.selected)
	v.selectItem(v.selected)
	v.scrollTo(v.offset)
}

// Visible returns the items currently drawn.
func (v *Viewer) Visible() viewport.Range {
	return v.svc.Visible(v.offset, v.extent())
}

// View implements tea.Model.
func (v *Viewer) View() string {
	if v.width == 0 {
		return "loading..."
	}

	cols, rows := v.canvasSize()
	helpView := v.help.View(v.keys)

	layouts := v.svc.Manager().Layouts()
	visible := v.Visible()
	canvas := Draw(layouts, visible.First, visible.Last, v.projection(), cols, rows)

	body := canvas.Render(v.styleFor(layouts))

	return lipgloss.JoinVertical(lipgloss.Left,
		v.header(),
		styles.ViewportStyle.Render(body),
		styles.StatusBarStyle.Width(v.width).MaxHeight(1).Render(v.statusLine(visible)),
		styles.HelpStyle.Render(helpView),
	)
}

func (v *Viewer) styleFor(layouts []layout.Layout) func(int) lipgloss.Style {
	byType := make(map[string]lipgloss.Style)
	return func(i int) lipgloss.Style {
		switch {
		case i == v.selected:
			return styles.SelectedBorderStyle
		case i >= len(layouts):
			return styles.ItemBorderStyle
		case layouts[i].IsOverridden:
			return styles.OverriddenStyle
		}
		t := layouts[i].Type
		s, ok := byType[t]
		if !ok {
			s = lipgloss.NewStyle().Foreground(styles.ColorForString(t))
			byType[t] = s
		}
		return s
	}
}

func (v *Viewer) header() string {
	cfg := v.svc.Config()
	title := styles.HeaderStyle.Render("listlayout")

	desc := string(cfg.Engine)
	if cfg.Engine == config.EngineGrid {
		desc += fmt.Sprintf(" span %d", cfg.ColumnSpan)
	} else if v.svc.Horizontal() {
		desc += " horizontal"
	} else {
		desc += " vertical"
	}
	win := v.svc.Window()
	desc += fmt.Sprintf(" · window %.0fx%.0f", win.Width, win.Height)

	return title + " " + styles.MutedStyle.Render(desc)
}

func (v *Viewer) statusLine(visible viewport.Range) string {
	content := v.svc.Manager().ContentDimension()
	parts := []string{
		fmt.Sprintf("items %d", v.svc.Count()),
		fmt.Sprintf("content %.0fx%.0f", content.Width, content.Height),
		fmt.Sprintf("offset %.0f", v.offset),
	}
	if !visible.Empty() {
		parts = append(parts, fmt.Sprintf("visible %d-%d", visible.First, visible.Last))
	}

	layouts := v.svc.Manager().Layouts()
	if v.selected < len(layouts) {
		rec := layouts[v.selected]
		sel := fmt.Sprintf("#%d %s %.0fx%.0f", v.selected, rec.Type, rec.Width, rec.Height)
		if rec.IsOverridden {
			sel += " measured"
		}
		parts = append(parts, sel)
	}
	if v.status != "" {
		parts = append(parts, v.status)
	}
	return strings.Join(parts, " · ")
}

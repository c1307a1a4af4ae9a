// Package scenario wires a config scenario to a layout engine and exposes
// the host-side operations the CLI and viewer drive: initial layout, applying
// measured sizes, inserting and removing items, and resizing the window.
package scenario

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/colonyops/listlayout/internal/core/config"
	"github.com/colonyops/listlayout/internal/core/estimate"
	"github.com/colonyops/listlayout/internal/core/layout"
	"github.com/colonyops/listlayout/internal/core/logging"
	"github.com/colonyops/listlayout/internal/core/viewport"
)

// Service owns one engine and the provider feeding it. It is not safe for
// concurrent use; callers serialize mutations the same way the engines
// require.
type Service struct {
	cfg     *config.Config
	table   *estimate.Table
	manager layout.Manager
	window  layout.Dimension
	log     zerolog.Logger
}

// New builds the provider and engine described by cfg. No layout runs until
// Run is called.
func New(cfg *config.Config, logger zerolog.Logger) (*Service, error) {
	rules := make([]estimate.Rule, 0, len(cfg.Types))
	for _, te := range cfg.Types {
		rules = append(rules, estimate.Rule{
			Match:     te.Match,
			Dimension: layout.Dimension{Width: te.Width, Height: te.Height},
		})
	}

	fallback := layout.Dimension{Width: cfg.Default.Width, Height: cfg.Default.Height}
	table, err := estimate.NewTable(rules, fallback, cfg.ItemTypes())
	if err != nil {
		return nil, fmt.Errorf("build estimate table: %w", err)
	}

	s := &Service{
		cfg:    cfg,
		table:  table,
		window: layout.Dimension{Width: cfg.Window.Width, Height: cfg.Window.Height},
		log:    logger,
	}
	s.manager = s.newManager(nil)
	return s, nil
}

func (s *Service) newManager(warm []layout.Layout) layout.Manager {
	logger := logging.Engine(s.log, string(s.cfg.Engine))

	if s.cfg.Engine == config.EngineGrid {
		return layout.NewGrid(s.table, s.window,
			layout.WithColumnSpan(s.cfg.ColumnSpan),
			layout.WithGridLayouts(warm),
			layout.WithGridLogger(logger),
		)
	}

	opts := []layout.FlowOption{layout.WithLayouts(warm), layout.WithLogger(logger)}
	if s.cfg.Horizontal() {
		opts = append(opts, layout.WithHorizontal())
	}
	return layout.NewFlow(s.table, s.window, opts...)
}

// Run lays out every item, then applies the scenario's configured overrides.
func (s *Service) Run() {
	s.manager.RelayoutFromIndex(0, s.table.Len())

	measured := make([]Measurement, 0, len(s.cfg.Overrides))
	for _, o := range s.cfg.Overrides {
		measured = append(measured, Measurement{Index: o.Index, Width: o.Width, Height: o.Height})
	}
	s.Measure(measured)
}

// Measurement is a rendered size reported by a host for one item.
type Measurement struct {
	Index  int     `json:"index"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Measure overrides each measured item and relays out from the earliest one.
// Measurements for indices that were never laid out are ignored. It returns
// the number of overrides applied.
func (s *Service) Measure(measured []Measurement) int {
	applied := 0
	earliest := -1
	count := len(s.manager.Layouts())

	for _, m := range measured {
		if m.Index < 0 || m.Index >= count {
			s.log.Debug().Int("index", m.Index).Msg("ignoring measurement for unknown index")
			continue
		}
		s.manager.OverrideLayout(m.Index, layout.Dimension{Width: m.Width, Height: m.Height})
		applied++
		if earliest == -1 || m.Index < earliest {
			earliest = m.Index
		}
	}

	if earliest >= 0 {
		s.manager.RelayoutFromIndex(earliest, s.table.Len())
	}
	return applied
}

// Insert adds an item of itemType before index and relays out from there.
// Records are shifted along with the items so measured sizes stay attached to
// the item they were measured for; the shifted store warm-starts a new engine.
func (s *Service) Insert(index int, itemType string) {
	index = min(max(index, 0), s.table.Len())
	s.table.Insert(index, itemType)

	warm := slices.Clone(s.manager.Layouts())
	if index <= len(warm) {
		warm = slices.Insert(warm, index, layout.Layout{Type: itemType})
	}
	s.rebuild(warm, index)
}

// Remove deletes the item at index and relays out from there.
func (s *Service) Remove(index int) {
	if index < 0 || index >= s.table.Len() {
		return
	}
	s.table.Remove(index)

	warm := slices.Clone(s.manager.Layouts())
	if index < len(warm) {
		warm = slices.Delete(warm, index, index+1)
	}
	s.rebuild(warm, index)
}

func (s *Service) rebuild(warm []layout.Layout, from int) {
	s.manager = s.newManager(warm)
	s.manager.RelayoutFromIndex(from, s.table.Len())
}

// Resize rebuilds the engine for a new window. Window dimensions are fixed
// for an engine's lifetime, so the old records seed the new engine and a full
// relayout runs.
func (s *Service) Resize(window layout.Dimension) {
	if window == s.window {
		return
	}
	s.window = window
	s.rebuild(s.manager.Layouts(), 0)
}

// Manager returns the active engine.
func (s *Service) Manager() layout.Manager {
	return s.manager
}

// Config returns the scenario the service was built from.
func (s *Service) Config() *config.Config {
	return s.cfg
}

// Window returns the current window bound.
func (s *Service) Window() layout.Dimension {
	return s.window
}

// Count returns the current number of items.
func (s *Service) Count() int {
	return s.table.Len()
}

// Horizontal reports whether the active engine scrolls horizontally.
func (s *Service) Horizontal() bool {
	return s.cfg.Horizontal()
}

// Visible returns the items intersecting [offset, offset+extent) along the
// scroll axis.
func (s *Service) Visible(offset, extent float64) viewport.Range {
	return viewport.VisibleRange(s.manager.Layouts(), offset, extent, s.Horizontal())
}

// Snapshot is a serializable view of the current layout.
type Snapshot struct {
	Engine      config.EngineKind             `json:"engine"`
	Orientation config.Orientation            `json:"orientation"`
	ColumnSpan  int                           `json:"column_span,omitempty"`
	Window      layout.Dimension              `json:"window"`
	Content     layout.Dimension              `json:"content"`
	Layouts     []layout.Layout               `json:"layouts"`
	Styles      map[int]layout.StyleOverrides `json:"styles,omitempty"`
}

// Snapshot copies the current layout state.
func (s *Service) Snapshot() Snapshot {
	layouts := append([]layout.Layout(nil), s.manager.Layouts()...)

	var styles map[int]layout.StyleOverrides
	for i := range layouts {
		if so := s.manager.StyleOverridesForIndex(i); so != nil {
			if styles == nil {
				styles = make(map[int]layout.StyleOverrides)
			}
			styles[i] = so
		}
	}

	orientation := config.OrientationVertical
	if s.Horizontal() {
		orientation = config.OrientationHorizontal
	}

	return Snapshot{
		Engine:      s.cfg.Engine,
		Orientation: orientation,
		ColumnSpan:  s.cfg.ColumnSpan,
		Window:      s.window,
		Content:     s.manager.ContentDimension(),
		Layouts:     layouts,
		Styles:      styles,
	}
}

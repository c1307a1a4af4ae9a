// Package config handles loading and validation of listlayout scenario files.
//
// A scenario describes the engine to build (flow or grid), the window it
// wraps against, per-type size estimates, the item list, and any measured
// sizes that should be applied as overrides after the first layout pass.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EngineKind selects the layout strategy.
type EngineKind string

// Supported engines.
const (
	EngineFlow EngineKind = "flow"
	EngineGrid EngineKind = "grid"
)

// IsValid reports whether k names a supported engine.
func (k EngineKind) IsValid() bool {
	switch k {
	case EngineFlow, EngineGrid:
		return true
	}
	return false
}

// Orientation selects the scroll direction of a flow layout.
type Orientation string

// Supported orientations.
const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

// IsValid reports whether o names a supported orientation.
func (o Orientation) IsValid() bool {
	switch o {
	case OrientationVertical, OrientationHorizontal:
		return true
	}
	return false
}

// Config is a layout scenario.
type Config struct {
	Engine      EngineKind     `yaml:"engine"`
	Orientation Orientation    `yaml:"orientation"`
	Window      Size           `yaml:"window"`
	ColumnSpan  int            `yaml:"column_span,omitempty"` // grid only
	Default     Size           `yaml:"default"`                // estimate for types matching no rule
	Types       []TypeEstimate `yaml:"types,omitempty"`
	Items       []ItemGroup    `yaml:"items"`
	Overrides   []Override     `yaml:"overrides,omitempty"`
}

// Size is a width/height pair in layout units.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TypeEstimate maps an item type name or doublestar pattern to an estimate.
type TypeEstimate struct {
	Match  string  `yaml:"match"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ItemGroup is a run of Count consecutive items of the same type.
type ItemGroup struct {
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
}

// Override is a measured size for one item, applied after the first pass.
type Override struct {
	Index  int     `yaml:"index"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Engine:      EngineFlow,
		Orientation: OrientationVertical,
		Window:      Size{Width: 300, Height: 600},
		Default:     Size{Width: 100, Height: 100},
		Items: []ItemGroup{
			{Type: "item", Count: 24},
		},
	}
}

// Load reads a scenario from path. If path is empty or does not exist the
// defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			// Start from zero values so an explicit item list replaces the default.
			cfg.Items = nil
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Save writes the scenario to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Engine == "" {
		c.Engine = defaults.Engine
	}
	if c.Orientation == "" {
		c.Orientation = defaults.Orientation
	}
	if c.Window == (Size{}) {
		c.Window = defaults.Window
	}
}

// Horizontal reports whether the scenario scrolls horizontally. Grids are
// always vertical.
func (c *Config) Horizontal() bool {
	return c.Engine == EngineFlow && c.Orientation == OrientationHorizontal
}

// ItemTypes expands the item groups into one type per index.
func (c *Config) ItemTypes() []string {
	types := make([]string, 0, c.ItemCount())
	for _, g := range c.Items {
		for range max(g.Count, 0) {
			types = append(types, g.Type)
		}
	}
	return types
}

// ItemCount returns the total number of items across all groups.
func (c *Config) ItemCount() int {
	n := 0
	for _, g := range c.Items {
		n += max(g.Count, 0)
	}
	return n
}

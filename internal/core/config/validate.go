package config

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the scenario is structurally valid. Field problems are
// reported together as criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("engine", c.Engine, validEngine),
		criterio.Run("orientation", c.Orientation, validOrientation),
		c.validateWindow(),
		criterio.Run("column_span", c.ColumnSpan, nonNegativeInt),
		c.validateTypes(),
		c.validateItems(),
		c.validateOverrides(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Engine == EngineGrid && c.Orientation == OrientationHorizontal {
		warnings = append(warnings, ValidationWarning{
			Category: "Engine",
			Message:  "grid layouts always scroll vertically; orientation is ignored",
		})
	}

	if c.Engine == EngineGrid && c.ColumnSpan == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Engine",
			Message:  "grid has no column_span; item widths fall back to estimates",
		})
	}

	if c.Engine == EngineFlow && c.ColumnSpan != 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Engine",
			Message:  "column_span only applies to the grid engine",
		})
	}

	count := c.ItemCount()
	for i, o := range c.Overrides {
		if o.Index >= count {
			warnings = append(warnings, ValidationWarning{
				Category: "Overrides",
				Item:     fmt.Sprintf("overrides[%d]", i),
				Message:  fmt.Sprintf("index %d is past the last item and will be ignored", o.Index),
			})
		}
	}

	return warnings
}

func validEngine(k EngineKind) error {
	if !k.IsValid() {
		return fmt.Errorf("must be %q or %q, got %q", EngineFlow, EngineGrid, k)
	}
	return nil
}

func validOrientation(o Orientation) error {
	if !o.IsValid() {
		return fmt.Errorf("must be %q or %q, got %q", OrientationVertical, OrientationHorizontal, o)
	}
	return nil
}

func nonNegativeInt(v int) error {
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func nonNegative(v float64) error {
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func positive(v float64) error {
	if v <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func (c *Config) validateWindow() error {
	return criterio.ValidateStruct(
		criterio.Run("window.width", c.Window.Width, positive),
		criterio.Run("window.height", c.Window.Height, positive),
		criterio.Run("default.width", c.Default.Width, nonNegative),
		criterio.Run("default.height", c.Default.Height, nonNegative),
	)
}

func (c *Config) validateTypes() error {
	var errs criterio.FieldErrorsBuilder
	for i, te := range c.Types {
		field := fmt.Sprintf("types[%d]", i)
		if te.Match == "" {
			errs = errs.Append(field+".match", errors.New("is required"))
		} else if !doublestar.ValidatePattern(te.Match) {
			errs = errs.Append(field+".match", fmt.Errorf("invalid pattern %q", te.Match))
		}
		if te.Width < 0 {
			errs = errs.Append(field+".width", errors.New("must not be negative"))
		}
		if te.Height < 0 {
			errs = errs.Append(field+".height", errors.New("must not be negative"))
		}
	}
	return errs.ToError()
}

func (c *Config) validateItems() error {
	var errs criterio.FieldErrorsBuilder
	for i, g := range c.Items {
		if g.Count < 0 {
			errs = errs.Append(fmt.Sprintf("items[%d].count", i), errors.New("must not be negative"))
		}
	}
	return errs.ToError()
}

func (c *Config) validateOverrides() error {
	var errs criterio.FieldErrorsBuilder
	for i, o := range c.Overrides {
		field := fmt.Sprintf("overrides[%d]", i)
		if o.Index < 0 {
			errs = errs.Append(field+".index", errors.New("must not be negative"))
		}
		if o.Width < 0 || o.Height < 0 {
			errs = errs.Append(field, errors.New("width and height must not be negative"))
		}
	}
	return errs.ToError()
}

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/listlayout/internal/core/config"
	"github.com/colonyops/listlayout/internal/core/viewport"
	"github.com/colonyops/listlayout/internal/printer"
	"github.com/colonyops/listlayout/internal/scenario"
	"github.com/colonyops/listlayout/pkg/iojson"
)

type MeasureCmd struct {
	flags *Flags
	fr    *iojson.FileReader[[]scenario.Measurement]

	// flags
	jsonOutput bool
	save       bool
}

// NewMeasureCmd creates a new measure command
func NewMeasureCmd(flags *Flags) *MeasureCmd {
	return &MeasureCmd{
		flags: flags,
		fr:    &iojson.FileReader[[]scenario.Measurement]{},
	}
}

// Register adds the measure command to the application
func (cmd *MeasureCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "measure",
		Usage:     "Apply measured item sizes and relayout",
		UsageText: "listlayout measure [options] < sizes.json",
		Description: `Reads a JSON array of measured sizes, applies each one as an override,
and relays out from the earliest measured item.

Input format:
  [{"index": 3, "width": 100, "height": 180}]

Measurements for items that were never laid out are skipped.
Use --save to record the applied measurements as overrides in the scenario file.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the resulting snapshot as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "save",
				Usage:       "write applied measurements back to the scenario file",
				Destination: &cmd.save,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *MeasureCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	measured, err := cmd.fr.Read()
	if err != nil {
		return fmt.Errorf("read measurements: %w", err)
	}

	svc, err := cmd.flags.Scenario()
	if err != nil {
		return err
	}

	applied := svc.Measure(measured)
	if skipped := len(measured) - applied; skipped > 0 {
		p.Warnf("skipped %d measurement(s) for unknown items", skipped)
	}

	if cmd.save && applied > 0 {
		if err := cmd.saveOverrides(svc, measured); err != nil {
			return err
		}
		p.Successf("saved %d override(s) to %s", applied, cmd.flags.ConfigPath)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.Write(out, os.Stderr, svc.Snapshot())
	}
	return writeTable(out, svc, viewport.Range{First: 0, Last: svc.Count() - 1})
}

// saveOverrides merges measurements into the scenario's overrides, replacing
// any earlier override for the same index.
func (cmd *MeasureCmd) saveOverrides(svc *scenario.Service, measured []scenario.Measurement) error {
	cfg := svc.Config()

	byIndex := make(map[int]int, len(cfg.Overrides))
	for i, o := range cfg.Overrides {
		byIndex[o.Index] = i
	}

	for _, m := range measured {
		if m.Index < 0 || m.Index >= svc.Count() {
			continue
		}
		o := config.Override{Index: m.Index, Width: m.Width, Height: m.Height}
		if i, ok := byIndex[m.Index]; ok {
			cfg.Overrides[i] = o
			continue
		}
		byIndex[m.Index] = len(cfg.Overrides)
		cfg.Overrides = append(cfg.Overrides, o)
	}

	if err := cfg.Save(cmd.flags.ConfigPath); err != nil {
		return fmt.Errorf("save scenario: %w", err)
	}
	return nil
}

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/listlayout/internal/core/layout"
	"github.com/colonyops/listlayout/internal/core/viewport"
	"github.com/colonyops/listlayout/internal/scenario"
	"github.com/colonyops/listlayout/pkg/iojson"
	"github.com/colonyops/listlayout/pkg/tmpl"
)

type LayoutCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	template   string
	offset     float64
	extent     float64
}

// NewLayoutCmd creates a new layout command
func NewLayoutCmd(flags *Flags) *LayoutCmd {
	return &LayoutCmd{flags: flags}
}

// Register adds the layout command to the application
func (cmd *LayoutCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "layout",
		Aliases:   []string{"ls"},
		Usage:     "Lay out the scenario and print every record",
		UsageText: "listlayout layout [options]",
		Description: `Runs a full layout pass over the configured items, applies any configured
overrides, and prints one row per item with its position and size.

Use --offset and --extent to print only the items visible in a scroll window.
Use --template to format each record with a Go template, for example:
  listlayout layout --template '{{ .Index }} {{ fixed 0 .Y }}'`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the full snapshot as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "template",
				Aliases:     []string{"t"},
				Usage:       "Go template rendered once per record",
				Destination: &cmd.template,
			},
			&cli.FloatFlag{
				Name:        "offset",
				Usage:       "scroll offset along the main axis",
				Destination: &cmd.offset,
			},
			&cli.FloatFlag{
				Name:        "extent",
				Usage:       "visible length along the main axis (0 prints every record)",
				Destination: &cmd.extent,
			},
		},
		Action: cmd.run,
	})
	return app
}

// recordRow is the data handed to --template for each record.
type recordRow struct {
	Index int
	layout.Layout
}

func (cmd *LayoutCmd) run(_ context.Context, c *cli.Command) error {
	svc, err := cmd.flags.Scenario()
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.Write(out, os.Stderr, svc.Snapshot())
	}

	rng := viewport.Range{First: 0, Last: svc.Count() - 1}
	if cmd.extent > 0 {
		rng = svc.Visible(cmd.offset, cmd.extent)
	}

	if cmd.template != "" {
		return writeTemplate(out, cmd.template, svc.Manager().Layouts(), rng)
	}

	return writeTable(out, svc, rng)
}

func writeTemplate(w io.Writer, text string, layouts []layout.Layout, rng viewport.Range) error {
	t, err := tmpl.Parse(text)
	if err != nil {
		return err
	}
	for i := rng.First; i <= rng.Last; i++ {
		line, err := t.Execute(recordRow{Index: i, Layout: layouts[i]})
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		_, _ = fmt.Fprintln(w, line)
	}
	return nil
}

func writeTable(w io.Writer, svc *scenario.Service, rng viewport.Range) error {
	layouts := svc.Manager().Layouts()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "INDEX\tTYPE\tX\tY\tWIDTH\tHEIGHT\tMEASURED")
	for i := rng.First; i <= rng.Last; i++ {
		l := layouts[i]
		measured := ""
		if l.IsOverridden {
			measured = "yes"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i, l.Type, num(l.X), num(l.Y), num(l.Width), num(l.Height), measured)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	content := svc.Manager().ContentDimension()
	_, _ = fmt.Fprintf(w, "\ncontent %sx%s, %d items\n", num(content.Width), num(content.Height), svc.Count())
	return nil
}

// num formats a layout value without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

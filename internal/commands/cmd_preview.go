package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/listlayout/internal/core/styles"
	"github.com/colonyops/listlayout/internal/tui"
)

const (
	defaultPreviewCols = 80
	defaultPreviewRows = 24
)

type PreviewCmd struct {
	flags *Flags

	// flags
	cols   int
	rows   int
	offset float64
}

// NewPreviewCmd creates a new preview command
func NewPreviewCmd(flags *Flags) *PreviewCmd {
	return &PreviewCmd{flags: flags}
}

// Register adds the preview command to the application
func (cmd *PreviewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "preview",
		Usage:     "Draw the laid-out items as text boxes",
		UsageText: "listlayout preview [options]",
		Description: `Rasterizes the items visible at --offset into box drawing characters,
scaled so the window's cross axis fills the output width (vertical) or
height (horizontal).

The output size defaults to the terminal size, or 80x24 when stdout is not a terminal.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "cols",
				Usage:       "output width in cells (defaults to terminal width)",
				Destination: &cmd.cols,
			},
			&cli.IntFlag{
				Name:        "rows",
				Usage:       "output height in cells (defaults to terminal height)",
				Destination: &cmd.rows,
			},
			&cli.FloatFlag{
				Name:        "offset",
				Usage:       "scroll offset along the main axis",
				Destination: &cmd.offset,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *PreviewCmd) size() (int, int) {
	cols, rows := cmd.cols, cmd.rows
	if cols > 0 && rows > 0 {
		return cols, rows
	}

	tw, th := defaultPreviewCols, defaultPreviewRows
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		// leave a line for the shell prompt
		tw, th = w, h-1
	}
	if cols <= 0 {
		cols = tw
	}
	if rows <= 0 {
		rows = th
	}
	return cols, rows
}

func (cmd *PreviewCmd) run(_ context.Context, c *cli.Command) error {
	svc, err := cmd.flags.Scenario()
	if err != nil {
		return err
	}

	cols, rows := cmd.size()
	p := tui.NewProjection(svc.Window(), cols, rows, svc.Horizontal())
	p.Offset = cmd.offset

	visible := svc.Visible(cmd.offset, p.Extent(cols, rows))
	layouts := svc.Manager().Layouts()
	canvas := tui.Draw(layouts, visible.First, visible.Last, p, cols, rows)

	out := canvas.Render(func(i int) lipgloss.Style {
		return itemStyle(layouts[i].Type, layouts[i].IsOverridden)
	})
	_, _ = fmt.Fprintln(c.Root().Writer, out)
	return nil
}

func itemStyle(itemType string, measured bool) lipgloss.Style {
	if measured {
		return styles.OverriddenStyle
	}
	return styles.ItemBorderStyle.Foreground(styles.ColorForString(itemType))
}

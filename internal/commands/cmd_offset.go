package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/listlayout/pkg/iojson"
)

type OffsetCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewOffsetCmd creates a new offset command
func NewOffsetCmd(flags *Flags) *OffsetCmd {
	return &OffsetCmd{flags: flags}
}

// Register adds the offset command to the application
func (cmd *OffsetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "offset",
		Usage:     "Print the laid-out position of one item",
		UsageText: "listlayout offset [options] INDEX",
		Description: `Looks up the top-left corner of the item at INDEX after a full layout pass.

Asking for an index that was never laid out is an error.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})
	return app
}

type offsetOutput struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func (cmd *OffsetCmd) run(_ context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one INDEX argument")
	}
	index, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", c.Args().First(), err)
	}

	svc, err := cmd.flags.Scenario()
	if err != nil {
		return err
	}

	out := c.Root().Writer

	pt, err := svc.Manager().OffsetForIndex(index)
	if err != nil {
		if cmd.jsonOutput {
			_ = iojson.WriteError(out, err.Error(), map[string]any{"index": index, "count": svc.Count()})
		}
		return err
	}

	if cmd.jsonOutput {
		return iojson.Write(out, os.Stderr, offsetOutput{Index: index, X: pt.X, Y: pt.Y})
	}

	_, _ = fmt.Fprintf(out, "%s %s\n", num(pt.X), num(pt.Y))
	return nil
}

package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/listlayout/internal/core/logging"
	"github.com/colonyops/listlayout/internal/tui"
	"github.com/colonyops/listlayout/pkg/logutils"
)

type ViewCmd struct {
	flags *Flags

	// flags
	fit float64
}

// NewViewCmd creates a new view command
func NewViewCmd(flags *Flags) *ViewCmd {
	return &ViewCmd{flags: flags}
}

// Register adds the view command to the application
func (cmd *ViewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "view",
		Usage:     "Open the interactive layout viewer",
		UsageText: "listlayout view [options]",
		Description: `Opens a full-screen viewer over the scenario's layout.

Scroll with j/k, move the selection with n/p, and press +/- to report a
larger or smaller measured size for the selected item. i inserts an item
after the selection and x removes it. Press ? for all key bindings.

Use --fit to size the layout window to the terminal, at the given number
of layout units per terminal column.`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:        "fit",
				Usage:       "layout units per terminal column; 0 keeps the scenario window",
				Destination: &cmd.fit,
			},
		},
		Action: cmd.run,
	})
	return app
}

// Run opens the viewer. Exported for use as default command.
func (cmd *ViewCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *ViewCmd) run(_ context.Context, c *cli.Command) error {
	if cmd.fit < 0 {
		return fmt.Errorf("--fit must not be negative")
	}

	// stderr logs would tear the alt screen; hold them until the viewer exits
	if cmd.flags.LogFile == "" {
		var deferred logutils.Deferred
		prev := log.Logger
		log.Logger = deferred.Logger(prev)
		defer func() {
			log.Logger = prev
			_ = deferred.Flush(os.Stderr)
		}()
	}

	svc, err := cmd.flags.Scenario()
	if err != nil {
		return err
	}

	opts := []tui.Option{tui.WithLogger(logging.Component("viewer"))}
	if cmd.fit > 0 {
		opts = append(opts, tui.WithFitToTerminal(cmd.fit))
	}

	p := tea.NewProgram(tui.NewViewer(svc, opts...), tea.WithAltScreen(), tea.WithOutput(c.Root().Writer))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

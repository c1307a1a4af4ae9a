package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/listlayout/internal/core/config"
	"github.com/colonyops/listlayout/internal/printer"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a scenario file with an interactive wizard",
		UsageText: "listlayout init [options]",
		Description: `Asks for the engine, window and item list, then writes a scenario file to
the --config path.

Use --yes to accept all defaults without prompts.
Use --force to overwrite an existing scenario; the old file is kept as .bak.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing scenario",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)
	path := cmd.flags.ConfigPath

	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if !cmd.yes {
		if err := promptScenario(&cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	backup, err := backupFile(path)
	if err != nil {
		return err
	}
	if backup != "" {
		p.Infof("Backed up existing scenario to %s", backup)
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	p.Successf("Wrote %s", path)
	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Run 'listlayout layout' to print the records")
	p.Printf("  2. Run 'listlayout view' to explore the layout")
	return nil
}

// promptScenario edits cfg in place through a huh form.
func promptScenario(cfg *config.Config) error {
	var (
		engine      = string(cfg.Engine)
		orientation = string(cfg.Orientation)
		width       = num(cfg.Window.Width)
		height      = num(cfg.Window.Height)
		span        = "3"
		itemType    = cfg.Items[0].Type
		count       = strconv.Itoa(cfg.Items[0].Count)
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Engine").
				Options(
					huh.NewOption("flow (wrap items of any size)", string(config.EngineFlow)),
					huh.NewOption("grid (fixed column count)", string(config.EngineGrid)),
				).
				Value(&engine),
			huh.NewSelect[string]().
				Title("Orientation").
				Description("Grids always scroll vertically").
				Options(
					huh.NewOption("vertical", string(config.OrientationVertical)),
					huh.NewOption("horizontal", string(config.OrientationHorizontal)),
				).
				Value(&orientation),
		),
		huh.NewGroup(
			huh.NewInput().Title("Window width").Value(&width).Validate(positiveNumber),
			huh.NewInput().Title("Window height").Value(&height).Validate(positiveNumber),
			huh.NewInput().Title("Grid column span").Description("Ignored by the flow engine").Value(&span).Validate(nonNegativeInt),
		),
		huh.NewGroup(
			huh.NewInput().Title("Item type").Value(&itemType),
			huh.NewInput().Title("Item count").Value(&count).Validate(nonNegativeInt),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	cfg.Engine = config.EngineKind(engine)
	cfg.Orientation = config.Orientation(orientation)
	cfg.Window.Width, _ = strconv.ParseFloat(strings.TrimSpace(width), 64)
	cfg.Window.Height, _ = strconv.ParseFloat(strings.TrimSpace(height), 64)
	if cfg.Engine == config.EngineGrid {
		cfg.ColumnSpan, _ = strconv.Atoi(strings.TrimSpace(span))
	}
	n, _ := strconv.Atoi(strings.TrimSpace(count))
	cfg.Items = []config.ItemGroup{{Type: strings.TrimSpace(itemType), Count: n}}
	return nil
}

func positiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("must be a number greater than zero")
	}
	return nil
}

func nonNegativeInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("must be a whole number of zero or more")
	}
	return nil
}

// backupFile copies path to path.bak. It returns "" when there is nothing to
// back up.
func backupFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read existing scenario: %w", err)
	}

	backup := path + ".bak"
	if err := os.WriteFile(backup, content, 0o644); err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}
	return backup, nil
}

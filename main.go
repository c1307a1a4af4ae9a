package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/listlayout/internal/commands"
	"github.com/colonyops/listlayout/internal/core/config"
	"github.com/colonyops/listlayout/internal/core/logging"
	"github.com/colonyops/listlayout/internal/core/styles"
	"github.com/colonyops/listlayout/internal/printer"
	"github.com/colonyops/listlayout/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "listlayout",
		Usage:     "Lay out virtualized lists and grids",
		UsageText: "listlayout [global options] command [command options]",
		Description: `listlayout computes the position and size of every item in a virtualized
list or grid, the way a scrolling view would before it renders anything.

Scenarios describe the engine, the window, per-type size estimates and the
items to place. Measured sizes can be fed back to see how the layout shifts.

Run 'listlayout' with no arguments to open the interactive viewer.
Run 'listlayout init' to create a scenario file.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("LISTLAYOUT_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("LISTLAYOUT_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to scenario file",
				Sources:     cli.EnvVars("LISTLAYOUT_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme (" + strings.Join(styles.ThemeNames(), ", ") + ")",
				Sources:     cli.EnvVars("LISTLAYOUT_THEME"),
				Value:       styles.DefaultTheme,
				Destination: &flags.Theme,
			},
			&cli.FloatFlag{
				Name:        "width",
				Usage:       "override the scenario's window width",
				Destination: &flags.Width,
			},
			&cli.FloatFlag{
				Name:        "height",
				Usage:       "override the scenario's window height",
				Destination: &flags.Height,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			palette, ok := styles.GetPalette(flags.Theme)
			if !ok {
				return ctx, fmt.Errorf("unknown theme %q (available: %s)", flags.Theme, strings.Join(styles.ThemeNames(), ", "))
			}
			styles.SetTheme(palette)

			ctx = printer.NewContext(ctx, printer.New(os.Stderr))
			ctx = logging.WithScenario(ctx, flags.ConfigPath)
			if c.Args().Len() > 0 {
				ctx = logging.WithCommand(ctx, c.Args().First())
			}

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				if !commands.ToleratesInvalidConfig(c.Args().First()) {
					return ctx, fmt.Errorf("load config: %w", err)
				}
				log.Warn().Ctx(ctx).Err(err).Msg("scenario invalid, using defaults")
				def := config.DefaultConfig()
				cfg = &def
			}
			flags.Config = cfg
			flags.ApplyWindow()

			log.Debug().Ctx(ctx).
				Str("engine", string(cfg.Engine)).
				Int("items", cfg.ItemCount()).
				Msg("scenario loaded")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	viewCmd := commands.NewViewCmd(flags)

	app = commands.NewLayoutCmd(flags).Register(app)
	app = commands.NewOffsetCmd(flags).Register(app)
	app = commands.NewMeasureCmd(flags).Register(app)
	app = commands.NewPreviewCmd(flags).Register(app)
	app = viewCmd.Register(app)
	app = commands.NewConfigCmd(flags).Register(app)
	app = commands.NewInitCmd(flags).Register(app)
	app = commands.NewDocCmd(flags).Register(app)

	// Set the viewer as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'listlayout --help' for usage", c.Args().First())
		}
		return viewCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}

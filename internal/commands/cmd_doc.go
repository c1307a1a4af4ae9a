package commands

import (
	"context"
	"embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/listlayout/internal/core/styles"
)

//go:embed docs/*.md
var docFS embed.FS

type DocCmd struct {
	flags *Flags
	raw   bool
	width int
}

func NewDocCmd(flags *Flags) *DocCmd {
	return &DocCmd{flags: flags}
}

func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Show built-in guides",
		Description: `Renders listlayout's guides in the terminal.

Use 'listlayout doc layout' to learn how items are packed.
Use 'listlayout doc scenario' for the scenario file format.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "wrap rendered output at this width",
				Value:       80,
				Destination: &cmd.width,
			},
		},
		Commands: []*cli.Command{
			cmd.guideCmd("layout", "How the flow and grid engines pack items"),
			cmd.guideCmd("scenario", "Scenario file reference"),
		},
	})
	return app
}

func (cmd *DocCmd) guideCmd(name, usage string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(_ context.Context, c *cli.Command) error {
			out, err := cmd.render(name)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(c.Root().Writer, out)
			return nil
		},
	}
}

func (cmd *DocCmd) render(name string) (string, error) {
	src, err := docFS.ReadFile("docs/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown guide %q: %w", name, err)
	}
	if cmd.raw {
		return string(src), nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(cmd.width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	return r.Render(string(src))
}

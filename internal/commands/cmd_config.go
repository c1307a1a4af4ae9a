package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/listlayout/internal/core/config"
	"github.com/colonyops/listlayout/internal/printer"
	"github.com/colonyops/listlayout/pkg/iojson"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config commands to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Scenario file commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate the scenario file",
				UsageText:   "listlayout config validate [options]",
				Description: "Loads the scenario file and reports field errors and non-fatal warnings.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
			{
				Name:        "show",
				Usage:       "Print the effective scenario",
				UsageText:   "listlayout config show",
				Description: "Prints the scenario after defaults and window overrides are applied.",
				Action:      cmd.runShow,
			},
		},
	})

	return app
}

// ValidationError is one field-level problem in the scenario.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validateOutput struct {
	Valid    bool                       `json:"valid"`
	Path     string                     `json:"path"`
	Errors   []ValidationError          `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

// validate loads the scenario from disk rather than using the already loaded
// config, so a broken file is reported instead of failing the Before hook.
func (cmd *ConfigCmd) validate() validateOutput {
	result := validateOutput{Valid: true, Path: cmd.flags.ConfigPath}

	cfg, err := config.Load(cmd.flags.ConfigPath)
	if err != nil {
		result.Valid = false
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				result.Errors = append(result.Errors, ValidationError{Field: fe.Field, Message: fe.Err.Error()})
			}
		} else {
			result.Errors = append(result.Errors, ValidationError{Message: err.Error()})
		}
		return result
	}

	result.Warnings = cfg.Warnings()
	return result
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	result := cmd.validate()

	if cmd.format == "json" {
		if err := iojson.Write(c.Root().Writer, c.Root().ErrWriter, result); err != nil {
			return err
		}
		if !result.Valid {
			return cli.Exit("", 1)
		}
		return nil
	}

	p := printer.Ctx(ctx)

	for _, warn := range result.Warnings {
		p.Warnf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	for _, e := range result.Errors {
		if e.Field != "" {
			p.Errorf("%s: %s", e.Field, e.Message)
			continue
		}
		p.Errorf("%s", e.Message)
	}

	p.Printf("")
	if result.Valid {
		p.Successf("Scenario is valid")
		return nil
	}

	p.Errorf("%d error(s) found", len(result.Errors))
	return cli.Exit("", 1)
}

func (cmd *ConfigCmd) runShow(_ context.Context, c *cli.Command) error {
	data, err := yaml.Marshal(cmd.flags.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = c.Root().Writer.Write(data)
	return err
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colonyops/listlayout/internal/core/config"
	"github.com/colonyops/listlayout/internal/core/logging"
	"github.com/colonyops/listlayout/internal/scenario"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Theme      string

	// Window overrides applied on top of the loaded scenario when non-zero.
	Width  float64
	Height float64

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default scenario path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "listlayout", "layout.yaml")
}

// ToleratesInvalidConfig reports whether the named top-level command can run
// when the scenario file fails to load. config reports the problem and init
// replaces the file.
func ToleratesInvalidConfig(command string) bool {
	switch command {
	case "config", "init":
		return true
	}
	return false
}

// ApplyWindow copies the window flag overrides into the loaded config.
func (f *Flags) ApplyWindow() {
	if f.Config == nil {
		return
	}
	if f.Width > 0 {
		f.Config.Window.Width = f.Width
	}
	if f.Height > 0 {
		f.Config.Window.Height = f.Height
	}
}

// Scenario builds the service for the loaded config and runs the first
// layout pass.
func (f *Flags) Scenario() (*scenario.Service, error) {
	if f.Config == nil {
		return nil, fmt.Errorf("config not loaded")
	}
	svc, err := scenario.New(f.Config, logging.Component("scenario"))
	if err != nil {
		return nil, err
	}
	svc.Run()
	return svc, nil
}

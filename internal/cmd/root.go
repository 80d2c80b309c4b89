package cmd

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/Adlai-Holler/ShameBell/internal/config"
	"github.com/Adlai-Holler/ShameBell/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Run       RunCmd       `cmd:"" help:"Open the bell in a window (default)" default:"1"`
	Terminal  TerminalCmd  `cmd:"terminal" help:"Ring the bell in the terminal"`
	Replay    ReplayCmd    `cmd:"replay" help:"Replay a YAML event script without a window"`
	States    StatesCmd    `cmd:"states" help:"Show the bell's transition table"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Ring the bell once through the system player" hidden:""`
	Setup     SetupCmd     `cmd:"setup" help:"Configure the bell interactively"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// LoadedSettings returns the settings read at startup, never nil
func (c *CLI) LoadedSettings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		// Apply MaxLogFiles setting
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("SHAMEBELL_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		// Apply Debug setting
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("SHAMEBELL_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Create container AFTER logging is initialized
	c.Container = NewContainer()

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Adlai-Holler/ShameBell/internal/cmd"
	"github.com/Adlai-Holler/ShameBell/internal/config"
	"github.com/Adlai-Holler/ShameBell/internal/version"
)

func main() {
	// Load settings from ~/.shamebell/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("shamebell"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

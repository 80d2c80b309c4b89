package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Adlai-Holler/ShameBell/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Example SettingsExampleCmd `cmd:"example" help:"Show settings file location and available options" default:"1"`
	Keys    SettingsKeysCmd    `cmd:"keys" help:"List or change key bindings"`
	Show    SettingsShowCmd    `cmd:"show" help:"Show the current settings"`
	Sound   SettingsSoundCmd   `cmd:"sound" help:"Set the sound file"`
	Volume  SettingsVolumeCmd  `cmd:"volume" help:"Set the playback volume"`
}

// SettingsExampleCmd displays an example settings file
type SettingsExampleCmd struct{}

// Run executes the example command
func (s *SettingsExampleCmd) Run(cli *CLI) error {
	output := map[string]any{
		"settings_file": config.GetSettingsPath(),
		"format":        config.GetSettingsExample(),
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// SettingsShowCmd displays the settings currently stored
type SettingsShowCmd struct{}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settings, err := cli.Container.SettingsService.Load()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Printf("Settings file: %s\n\n%s\n", config.GetSettingsPath(), string(data))
	return nil
}

// SettingsSoundCmd sets the sound file
type SettingsSoundCmd struct {
	Path string `arg:"" optional:"" help:"Sound file (empty restores the default)"`
}

// Run executes the sound command
func (s *SettingsSoundCmd) Run(cli *CLI) error {
	if err := validateSoundFile(s.Path); err != nil {
		return err
	}
	if err := cli.Container.SettingsService.SetSoundFile(s.Path); err != nil {
		return err
	}
	fmt.Printf("Sound set to: %s\n", displayOrDefault(s.Path))
	return nil
}

// SettingsVolumeCmd sets the playback volume
type SettingsVolumeCmd struct {
	Volume float64 `arg:"" help:"Volume between 0 and 1"`
}

// Run executes the volume command
func (s *SettingsVolumeCmd) Run(cli *CLI) error {
	if err := cli.Container.SettingsService.SetVolume(s.Volume); err != nil {
		return err
	}
	fmt.Printf("Volume set to: %g\n", s.Volume)
	return nil
}

func displayOrDefault(value string) string {
	if value == "" {
		return "(default)"
	}
	return value
}

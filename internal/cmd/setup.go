package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	adaptersound "github.com/Adlai-Holler/ShameBell/internal/adapters/sound"
	"github.com/Adlai-Holler/ShameBell/internal/config"
	"github.com/Adlai-Holler/ShameBell/internal/logging"
)

// SetupCmd walks the user through the settings that matter
type SetupCmd struct{}

// setupAnswers holds the form values before they are written back
type setupAnswers struct {
	Frontend   string
	Fullscreen bool
	SoundFile  string
	Volume     string
}

// Run shows the form and saves the answers to settings.json
func (s *SetupCmd) Run(cli *CLI) error {
	service := cli.Container.SettingsService

	current, err := service.Load()
	if err != nil {
		return err
	}
	answers := answersFromSettings(current)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should the bell ring?").
				Options(
					huh.NewOption("In a window", config.FrontendScreen),
					huh.NewOption("In the terminal", config.FrontendTerminal),
				).
				Value(&answers.Frontend),
			huh.NewInput().
				Title("Sound file").
				Description("mp3, ogg or wav. Leave empty for the default bell.").
				Value(&answers.SoundFile).
				Validate(validateSoundFile),
			huh.NewInput().
				Title("Volume").
				Description("Between 0 and 1").
				Value(&answers.Volume).
				Validate(func(v string) error {
					_, err := parseVolume(v)
					return err
				}),
			huh.NewConfirm().
				Title("Open the window fullscreen?").
				Value(&answers.Fullscreen),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			logging.Logger.Info("Setup cancelled")
			return nil
		}
		return fmt.Errorf("setup form failed: %w", err)
	}

	if err := service.Update(answers.apply); err != nil {
		return err
	}

	fmt.Printf("Settings saved to %s\n", config.GetSettingsPath())
	return nil
}

func answersFromSettings(settings *config.Settings) *setupAnswers {
	answers := &setupAnswers{
		Frontend:  settings.Frontend,
		SoundFile: settings.SoundFile,
		Volume:    "1",
	}
	if answers.Frontend == "" {
		answers.Frontend = config.FrontendScreen
	}
	if settings.Volume != nil {
		answers.Volume = strconv.FormatFloat(*settings.Volume, 'f', -1, 64)
	}
	if settings.Fullscreen != nil {
		answers.Fullscreen = *settings.Fullscreen
	}
	return answers
}

// apply copies the answers onto settings
func (a *setupAnswers) apply(settings *config.Settings) error {
	volume, err := parseVolume(a.Volume)
	if err != nil {
		return err
	}

	settings.Frontend = a.Frontend
	settings.SoundFile = strings.TrimSpace(a.SoundFile)
	settings.Volume = &volume
	fullscreen := a.Fullscreen
	settings.Fullscreen = &fullscreen
	return nil
}

func parseVolume(v string) (float64, error) {
	volume, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("volume must be a number")
	}
	if volume < 0 || volume > 1 {
		return 0, fmt.Errorf("volume must be between 0 and 1")
	}
	return volume, nil
}

func validateSoundFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	_, err := adaptersound.ResolveSoundFile(path)
	return err
}

package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Adlai-Holler/ShameBell/internal/logging"
	"github.com/Adlai-Holler/ShameBell/internal/ui"
)

// TerminalCmd rings the bell in the terminal
type TerminalCmd struct {
	Sound string `help:"Sound file to ring (defaults to a system sound)" env:"SHAMEBELL_SOUND"`
}

// Run starts the bubbletea program
func (t *TerminalCmd) Run(cli *CLI) error {
	settings := cli.LoadedSettings()
	if t.Sound == "" {
		if _, hasEnv := os.LookupEnv("SHAMEBELL_SOUND"); !hasEnv {
			t.Sound = settings.SoundFile
		}
	}

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}

	player, err := newSystemPlayer(t.Sound)
	if err != nil {
		return err
	}
	defer func() {
		if err := player.Stop(); err != nil {
			logging.Logger.Warn("Failed to stop playback", "error", err)
		}
	}()

	p := tea.NewProgram(
		ui.NewModel(player, ui.NewKeyMap(settings.Keys)),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Wiggling needs motion events
		tea.WithReportFocus(),    // Losing focus lifts every finger
	)

	logging.Logger.Info("Starting TUI program", "sound", player.File())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

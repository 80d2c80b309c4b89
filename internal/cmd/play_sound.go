package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Adlai-Holler/ShameBell/internal/logging"
)

// PlaySoundCmd rings the bell once and waits for it to finish
type PlaySoundCmd struct {
	Sound   string        `help:"Sound file to ring (defaults to a system sound)" env:"SHAMEBELL_SOUND"`
	Timeout time.Duration `help:"Give up after this long" default:"30s"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	soundFile := p.Sound
	if soundFile == "" {
		soundFile = cli.LoadedSettings().SoundFile
	}

	player, err := newSystemPlayer(soundFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := player.Play(); err != nil {
		return err
	}

	select {
	case result := <-player.Finished():
		if result.Interrupted {
			if result.Err != nil {
				return fmt.Errorf("playback interrupted: %w", result.Err)
			}
			return fmt.Errorf("playback interrupted")
		}
		logging.Logger.Debug("Bell rang", "file", player.File())
		return nil
	case <-ctx.Done():
		return player.Stop()
	case <-time.After(p.Timeout):
		if err := player.Stop(); err != nil {
			logging.Logger.Warn("Failed to stop playback", "error", err)
		}
		return fmt.Errorf("playback did not finish within %s", p.Timeout)
	}
}

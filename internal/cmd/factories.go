package cmd

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	adaptersound "github.com/Adlai-Holler/ShameBell/internal/adapters/sound"
	"github.com/Adlai-Holler/ShameBell/internal/config"
	"github.com/Adlai-Holler/ShameBell/internal/logging"
	"github.com/Adlai-Holler/ShameBell/internal/services"
)

// sampleRate is the rate every sound is resampled to for the screen
const sampleRate = 48000

// Container holds all dependencies for the application
type Container struct {
	SettingsService *services.SettingsService
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() *Container {
	return &Container{
		SettingsService: services.NewSettingsService(config.FileStore{}),
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	return nil
}

// newEbitenPlayer loads the bell sound for the screen front end. An empty
// path selects the built-in chime.
func newEbitenPlayer(soundFile string, volume float64) (*adaptersound.EbitenPlayer, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	player, err := adaptersound.NewEbitenPlayer(ctx, soundFile, volume)
	if err != nil {
		return nil, fmt.Errorf("failed to load sound: %w", err)
	}
	return player, nil
}

// newSystemPlayer resolves the bell sound and creates a player process
// wrapper for it. It fails when no sound can be found or played.
func newSystemPlayer(soundFile string) (*adaptersound.SystemPlayer, error) {
	resolved, err := adaptersound.ResolveSoundFile(soundFile)
	if err != nil {
		return nil, err
	}
	logging.Logger.Info("Sound resolved", "file", resolved)

	player, err := adaptersound.NewSystemPlayer(resolved)
	if err != nil {
		return nil, err
	}
	return player, nil
}

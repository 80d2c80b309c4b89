package cmd

import (
	"os"

	"github.com/Adlai-Holler/ShameBell/internal/config"
	"github.com/Adlai-Holler/ShameBell/internal/logging"
	"github.com/Adlai-Holler/ShameBell/internal/screen"
	"github.com/Adlai-Holler/ShameBell/internal/version"
)

// RunCmd opens the bell window
type RunCmd struct {
	Fullscreen bool    `help:"Start in fullscreen"`
	Height     int     `help:"Window height" default:"844"`
	Sound      string  `help:"Sound file to ring (mp3, ogg or wav; built-in chime if empty)" env:"SHAMEBELL_SOUND"`
	Volume     float64 `help:"Playback volume between 0 and 1" default:"1"`
	Width      int     `help:"Window width" default:"390"`
}

// applySettings fills flags still at their defaults from settings.json
func (r *RunCmd) applySettings(settings *config.Settings) {
	if r.Sound == "" {
		if _, hasEnv := os.LookupEnv("SHAMEBELL_SOUND"); !hasEnv {
			r.Sound = settings.SoundFile
		}
	}
	if r.Volume == 1 && settings.Volume != nil {
		r.Volume = *settings.Volume
	}
	if r.Width == screen.DefaultWindowWidth && settings.WindowWidth != nil {
		r.Width = *settings.WindowWidth
	}
	if r.Height == screen.DefaultWindowHeight && settings.WindowHeight != nil {
		r.Height = *settings.WindowHeight
	}
	if !r.Fullscreen && settings.Fullscreen != nil {
		r.Fullscreen = *settings.Fullscreen
	}
}

// Run opens the window, or the terminal bell when settings.json prefers it
func (r *RunCmd) Run(cli *CLI) error {
	settings := cli.LoadedSettings()
	if settings.Frontend == config.FrontendTerminal {
		logging.Logger.Info("Using terminal front end from settings")
		terminal := &TerminalCmd{Sound: r.Sound}
		return terminal.Run(cli)
	}

	r.applySettings(settings)

	keys, err := screen.ParseKeys(settings.ScreenKeys)
	if err != nil {
		return err
	}

	player, err := newEbitenPlayer(r.Sound, r.Volume)
	if err != nil {
		return err
	}
	defer player.Close()

	game, err := screen.NewGame(player, screen.Options{Keys: keys})
	if err != nil {
		return err
	}

	return screen.Run(game, screen.WindowOptions{
		Fullscreen: r.Fullscreen,
		Height:     r.Height,
		Title:      "ShameBell " + version.Version,
		Width:      r.Width,
	})
}

package screen

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Adlai-Holler/ShameBell/internal/logging"
)

// Default window size, a phone held in portrait
const (
	DefaultWindowHeight = 844
	DefaultWindowWidth  = 390
)

// WindowOptions configures the desktop window
type WindowOptions struct {
	Fullscreen bool
	Height     int
	Title      string
	Width      int
}

// Run opens the window and blocks until it is closed or the quit key is
// pressed
func Run(game *Game, opts WindowOptions) error {
	if opts.Width <= 0 {
		opts.Width = DefaultWindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultWindowHeight
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)
	// keep updating while unfocused so focus loss stops the bell right away
	ebiten.SetRunnableOnUnfocused(true)

	logging.Logger.Info("Opening window", "width", opts.Width, "height", opts.Height, "fullscreen", opts.Fullscreen)

	err := ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

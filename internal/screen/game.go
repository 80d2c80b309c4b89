// Package screen is the Ebitengine front end: a full-window bell driven by
// touches, the mouse and the keyboard.
package screen

import (
	"maps"
	"slices"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/Adlai-Holler/ShameBell/internal/domain"
	"github.com/Adlai-Holler/ShameBell/internal/logging"
	"github.com/Adlai-Holler/ShameBell/internal/motion"
	"github.com/Adlai-Holler/ShameBell/internal/ports"
	"github.com/Adlai-Holler/ShameBell/internal/services"
)

// MouseTouchID is the touch id the left mouse button reports as
const MouseTouchID domain.TouchID = -1

// Player is a sound player that is polled from the game loop
type Player interface {
	ports.SoundPlayer
	// Poll reports whether playback ended on its own since the last call
	Poll() bool
}

// Options configures a Game
type Options struct {
	Keys Keys
	// Sensor overrides the keyboard orientation sensor
	Sensor ports.OrientationSensor
}

// frameInput is everything the game reads from Ebitengine in one tick
type frameInput struct {
	began            []domain.TouchID
	ended            []domain.TouchID
	focused          bool
	hasPointer       bool
	pointer          ebimath.Vector // logical pixels
	quit             bool
	shake            bool
	toggleFullscreen bool
}

// Game implements ebiten.Game around a BellService
type Game struct {
	bell     *services.BellService
	canvas   *Canvas
	detector *motion.Detector
	focused  bool
	keyboard *KeyboardSensor // nil when a sensor is injected
	keys     Keys
	player   Player
	portrait bool
	scale    float64
	sensor   ports.OrientationSensor
	tick     uint64

	justPressed []ebiten.TouchID
	pressed     map[ebiten.TouchID]struct{}
}

// NewGame wires the bell to the canvas and player
func NewGame(player Player, opts Options) (*Game, error) {
	canvas, err := NewCanvas()
	if err != nil {
		return nil, err
	}

	g := &Game{
		canvas:   canvas,
		detector: motion.NewDetector(),
		focused:  true,
		keys:     opts.Keys,
		player:   player,
		portrait: true,
		scale:    1,
		sensor:   opts.Sensor,
		pressed:  make(map[ebiten.TouchID]struct{}),
	}
	if g.sensor == nil {
		g.keyboard = NewKeyboardSensor(opts.Keys.Flip)
		g.sensor = g.keyboard
	}

	g.bell = services.NewBellService(player, canvas)
	g.bell.OrientationChanged(g.sensor.UpsideDown(), g.portrait)
	canvas.Settle()

	return g, nil
}

// Bell exposes the underlying service
func (g *Game) Bell() *services.BellService {
	return g.bell
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	return g.step(g.gather())
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Draw(screen)
}

// Layout implements ebiten.Game. The screen is rendered at device
// resolution; portrait means the window is at least as tall as it is wide.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	g.portrait = outsideHeight >= outsideWidth
	return int(float64(outsideWidth) * g.scale), int(float64(outsideHeight) * g.scale)
}

func (g *Game) gather() frameInput {
	in := frameInput{
		focused:          ebiten.IsFocused(),
		quit:             anyJustPressed(g.keys.Quit),
		shake:            anyJustPressed(g.keys.Shake),
		toggleFullscreen: anyJustPressed(g.keys.Fullscreen),
	}

	g.justPressed = inpututil.AppendJustPressedTouchIDs(g.justPressed[:0])
	for _, id := range g.justPressed {
		g.pressed[id] = struct{}{}
		in.began = append(in.began, domain.TouchID(id))
	}
	for _, id := range slices.Sorted(maps.Keys(g.pressed)) {
		if inpututil.IsTouchJustReleased(id) {
			delete(g.pressed, id)
			in.ended = append(in.ended, domain.TouchID(id))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.began = append(in.began, MouseTouchID)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.ended = append(in.ended, MouseTouchID)
	}

	var x, y int
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		x, y = ebiten.CursorPosition()
		in.hasPointer = true
	case len(g.pressed) > 0:
		x, y = ebiten.TouchPosition(slices.Min(slices.Collect(maps.Keys(g.pressed))))
		in.hasPointer = true
	}
	if in.hasPointer {
		in.pointer = ebimath.V(float64(x)/g.scale, float64(y)/g.scale)
	}

	if g.keyboard != nil {
		g.keyboard.Update()
	}
	return in
}

func (g *Game) step(in frameInput) error {
	g.tick++

	if in.quit {
		return ebiten.Termination
	}
	if in.toggleFullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if g.focused && !in.focused {
		g.loseFocus()
	}
	g.focused = in.focused

	for _, id := range in.began {
		g.report(g.bell.BeginTouch(id))
	}
	for _, id := range in.ended {
		g.report(g.bell.EndTouch(id))
	}

	if g.bell.Touching() && in.hasPointer {
		if g.detector.Observe(in.pointer, g.tick) {
			logging.Logger.Debug("Wiggle detected", "tick", g.tick)
			g.report(g.bell.Shake())
		}
	} else {
		g.detector.Reset()
	}
	if in.shake {
		g.report(g.bell.Shake())
	}

	g.bell.OrientationChanged(g.sensor.UpsideDown(), g.portrait)

	if g.player.Poll() {
		g.report(g.bell.AudioFinished())
	}

	g.canvas.Update()
	return nil
}

// loseFocus drops every touch, since their releases will never arrive
func (g *Game) loseFocus() {
	logging.Logger.Debug("Window lost focus", "touches", len(g.pressed))
	clear(g.pressed)
	g.detector.Reset()
	g.report(g.bell.CancelAllTouches())
	g.report(g.bell.AudioInterrupted())
}

func (g *Game) report(_ domain.Transition, err error) {
	if err != nil {
		logging.Logger.Warn("Bell event failed", "error", err, "state", g.bell.State())
	}
}

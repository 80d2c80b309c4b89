package screen

import (
	"math"
	"testing"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adlai-Holler/ShameBell/internal/domain"
	portsmocks "github.com/Adlai-Holler/ShameBell/internal/ports/mocks"
)

type fakePlayer struct {
	ended   bool
	playing bool
	plays   int
	stops   int
}

func (p *fakePlayer) IsPlaying() bool { return p.playing }

func (p *fakePlayer) Play() error {
	p.playing = true
	p.plays++
	return nil
}

func (p *fakePlayer) Stop() error {
	p.playing = false
	p.stops++
	return nil
}

func (p *fakePlayer) Poll() bool {
	if !p.ended {
		return false
	}
	p.ended = false
	p.playing = false
	return true
}

func newTestGame(t *testing.T) (*Game, *fakePlayer, *KeyboardSensor) {
	player := &fakePlayer{}
	sensor := NewKeyboardSensor(nil)
	game, err := NewGame(player, Options{Keys: DefaultKeys(), Sensor: sensor})
	require.NoError(t, err)
	return game, player, sensor
}

func focusedFrame() frameInput {
	return frameInput{focused: true}
}

func TestNewGame_StartsIdle(t *testing.T) {
	game, _, _ := newTestGame(t)

	assert.Equal(t, domain.Idle, game.Bell().State())
	assert.Equal(t, domain.IdleImageAlpha, game.canvas.DiscAlpha())
	text, alpha, rotation := game.canvas.Label()
	assert.Equal(t, domain.PromptHoldUpsideDown, text)
	assert.Equal(t, 1.0, alpha)
	assert.Equal(t, 0.0, rotation)
}

func TestNewGame_DefaultSensorIsKeyboard(t *testing.T) {
	game, err := NewGame(&fakePlayer{}, Options{Keys: DefaultKeys()})

	require.NoError(t, err)
	assert.NotNil(t, game.keyboard)
}

func TestGame_TouchAndShakeKey(t *testing.T) {
	game, player, _ := newTestGame(t)

	in := focusedFrame()
	in.began = []domain.TouchID{MouseTouchID}
	require.NoError(t, game.step(in))
	assert.Equal(t, domain.ReadyToShame, game.Bell().State())

	in = focusedFrame()
	in.shake = true
	require.NoError(t, game.step(in))

	assert.Equal(t, domain.Shame, game.Bell().State())
	assert.Equal(t, 1, player.plays)
	assert.Equal(t, 0.0, game.canvas.labelAlpha.Target(), "prompt fades out while ringing")
}

func TestGame_AudioEndRearms(t *testing.T) {
	game, player, _ := newTestGame(t)
	require.NoError(t, game.step(frameInput{focused: true, began: []domain.TouchID{3}, shake: true}))
	require.Equal(t, domain.Shame, game.Bell().State())

	player.ended = true
	require.NoError(t, game.step(focusedFrame()))

	assert.Equal(t, domain.ReadyToShame, game.Bell().State())
	assert.True(t, game.Bell().Touching())
}

func TestGame_FocusLossCancelsTouches(t *testing.T) {
	game, player, _ := newTestGame(t)
	require.NoError(t, game.step(frameInput{focused: true, began: []domain.TouchID{1, 2}, shake: true}))
	game.pressed[1] = struct{}{}
	require.Equal(t, domain.Shame, game.Bell().State())

	require.NoError(t, game.step(frameInput{focused: false}))

	assert.Equal(t, domain.Idle, game.Bell().State())
	assert.False(t, game.Bell().Touching())
	assert.Empty(t, game.pressed)
	assert.False(t, player.playing)
	assert.GreaterOrEqual(t, player.stops, 1)
}

func TestGame_WiggleShakes(t *testing.T) {
	game, player, _ := newTestGame(t)
	require.NoError(t, game.step(frameInput{focused: true, began: []domain.TouchID{MouseTouchID}}))

	for i := 0; i < 8; i++ {
		in := focusedFrame()
		in.hasPointer = true
		in.pointer = ebimath.V(float64(100+(i%2)*20), 300)
		require.NoError(t, game.step(in))
	}

	assert.Equal(t, domain.Shame, game.Bell().State())
	assert.Equal(t, 1, player.plays)
}

func TestGame_WiggleWithoutTouchDoesNothing(t *testing.T) {
	game, player, _ := newTestGame(t)

	for i := 0; i < 8; i++ {
		in := focusedFrame()
		in.hasPointer = true
		in.pointer = ebimath.V(float64(100+(i%2)*20), 300)
		require.NoError(t, game.step(in))
	}

	assert.Equal(t, domain.Idle, game.Bell().State())
	assert.Zero(t, player.plays)
}

func TestGame_FlipTurnsLabel(t *testing.T) {
	game, _, sensor := newTestGame(t)

	sensor.Toggle()
	require.NoError(t, game.step(focusedFrame()))

	assert.Equal(t, math.Pi, game.canvas.rotation.Target())
	text, _, _ := game.canvas.Label()
	assert.Equal(t, domain.PromptTapAndHold, text)
}

func TestGame_LandscapeIgnoresFlip(t *testing.T) {
	game, _, sensor := newTestGame(t)
	game.portrait = false

	sensor.Toggle()
	require.NoError(t, game.step(focusedFrame()))

	assert.Equal(t, 0.0, game.canvas.rotation.Target())
	assert.False(t, game.Bell().UpsideDown())
}

func TestGame_InjectedSensor(t *testing.T) {
	sensor := portsmocks.NewMockOrientationSensor(t)
	sensor.EXPECT().UpsideDown().Return(true)

	game, err := NewGame(&fakePlayer{}, Options{Keys: DefaultKeys(), Sensor: sensor})
	require.NoError(t, err)

	assert.Nil(t, game.keyboard)
	assert.True(t, game.Bell().UpsideDown())
}

func TestGame_Quit(t *testing.T) {
	game, _, _ := newTestGame(t)

	err := game.step(frameInput{focused: true, quit: true})

	assert.ErrorIs(t, err, ebiten.Termination)
}

package ui

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adlai-Holler/ShameBell/internal/adapters/sound"
	"github.com/Adlai-Holler/ShameBell/internal/config"
	"github.com/Adlai-Holler/ShameBell/internal/domain"
)

type fakePlayer struct {
	finished   chan sound.PlaybackResult
	generation uint64
	playErr    error
	playing  bool
	plays    int
	stops    int
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{finished: make(chan sound.PlaybackResult, 1)}
}

func (p *fakePlayer) Finished() <-chan sound.PlaybackResult { return p.finished }

func (p *fakePlayer) Generation() uint64 { return p.generation }

func (p *fakePlayer) IsPlaying() bool { return p.playing }

func (p *fakePlayer) Play() error {
	if p.playErr != nil {
		return p.playErr
	}
	p.generation++
	p.playing = true
	p.plays++
	return nil
}

func (p *fakePlayer) Stop() error {
	p.generation++
	p.playing = false
	p.stops++
	return nil
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (*Model, *fakePlayer) {
	t.Helper()
	player := newFakePlayer()
	m := NewModel(player, NewKeyMap(nil))
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 40})
	return m, player
}

func press(m *Model) {
	m.Update(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func TestModel_FingerAndShake(t *testing.T) {
	m, player := newTestModel(t)

	m.Update(keyMsg(" "))
	assert.Equal(t, domain.ReadyToShame, m.Bell().State())
	assert.Equal(t, domain.PromptRingTheBell, m.view.Label())

	m.Update(keyMsg("s"))
	assert.Equal(t, domain.Shame, m.Bell().State())
	assert.Equal(t, 1, player.plays)
	assert.Empty(t, m.view.Label(), "prompt hidden while ringing")

	m.Update(keyMsg(" "))
	assert.Equal(t, domain.Idle, m.Bell().State())
	assert.False(t, player.playing)
}

func TestModel_ShakeWhileIdleIsNoop(t *testing.T) {
	m, player := newTestModel(t)

	m.Update(keyMsg("s"))

	assert.Equal(t, domain.Idle, m.Bell().State())
	assert.Zero(t, player.plays)
}

func TestModel_MousePressAndRelease(t *testing.T) {
	m, _ := newTestModel(t)

	press(m)
	assert.Equal(t, domain.ReadyToShame, m.Bell().State())

	// release without button info still lifts the mouse
	m.Update(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	assert.Equal(t, domain.Idle, m.Bell().State())
}

func TestModel_RightClickIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	assert.Equal(t, domain.Idle, m.Bell().State())
}

func TestModel_MouseWiggleShakes(t *testing.T) {
	m, player := newTestModel(t)
	press(m)

	for i := 0; i < 8; i++ {
		m.Update(tea.MouseMsg{X: 10 + (i%2)*3, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	}

	assert.Equal(t, domain.Shame, m.Bell().State())
	assert.Equal(t, 1, player.plays)
}

func TestModel_MotionWithoutPressIgnored(t *testing.T) {
	m, player := newTestModel(t)

	for i := 0; i < 8; i++ {
		m.Update(tea.MouseMsg{X: 10 + (i%2)*3, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	}

	assert.Equal(t, domain.Idle, m.Bell().State())
	assert.Zero(t, player.plays)
}

func TestModel_AudioEnded(t *testing.T) {
	tests := []struct {
		name   string
		result sound.PlaybackResult
	}{
		{"finished", sound.PlaybackResult{}},
		{"interrupted", sound.PlaybackResult{Interrupted: true, Err: errors.New("signal: killed")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, player := newTestModel(t)
			m.Update(keyMsg(" "))
			m.Update(keyMsg("s"))
			require.Equal(t, domain.Shame, m.Bell().State())

			tt.result.Generation = player.generation
			_, cmd := m.Update(audioEndedMsg{result: tt.result})

			assert.Equal(t, domain.ReadyToShame, m.Bell().State())
			assert.NotNil(t, cmd, "keeps listening for the next playback")
			assert.Equal(t, 1, player.stops)
		})
	}
}

func TestModel_IgnoresEarlierPlaybackResult(t *testing.T) {
	m, player := newTestModel(t)
	m.Update(keyMsg(" "))
	m.Update(keyMsg("s"))
	stale := sound.PlaybackResult{Generation: player.generation}

	// lift, re-arm and ring again before the first result is handled
	m.Update(keyMsg(" "))
	m.Update(keyMsg(" "))
	m.Update(keyMsg("s"))
	require.Equal(t, domain.Shame, m.Bell().State())
	stops := player.stops

	_, cmd := m.Update(audioEndedMsg{result: stale})

	assert.Equal(t, domain.Shame, m.Bell().State())
	assert.Equal(t, stops, player.stops)
	assert.NotNil(t, cmd)
}

func TestModel_WaitForAudioDeliversResult(t *testing.T) {
	m, player := newTestModel(t)
	player.finished <- sound.PlaybackResult{Interrupted: true}

	msg := m.Init()()

	ended, ok := msg.(audioEndedMsg)
	require.True(t, ok)
	assert.True(t, ended.result.Interrupted)
}

func TestModel_BlurCancelsTouches(t *testing.T) {
	m, player := newTestModel(t)
	press(m)
	m.Update(keyMsg(" "))
	m.Update(keyMsg("s"))
	require.Equal(t, domain.Shame, m.Bell().State())

	m.Update(tea.BlurMsg{})

	assert.Equal(t, domain.Idle, m.Bell().State())
	assert.False(t, m.Bell().Touching())
	assert.False(t, player.playing)
	assert.False(t, m.finger)
	assert.False(t, m.mouseDown)
}

func TestModel_FlipTurnsLabel(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyMsg("u"))

	assert.True(t, m.Bell().UpsideDown())
	assert.Equal(t, FlipText(domain.PromptTapAndHold), m.view.Label())
}

func TestModel_LandscapeIgnoresFlip(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	m.Update(keyMsg("u"))

	assert.False(t, m.Bell().UpsideDown())
	assert.Equal(t, domain.PromptHoldUpsideDown, m.view.Label())

	// back to portrait picks up the pending flip
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 30})
	assert.True(t, m.Bell().UpsideDown())
}

func TestModel_PlayFailureShowsError(t *testing.T) {
	m, player := newTestModel(t)
	player.playErr = errors.New("no player")

	m.Update(keyMsg(" "))
	m.Update(keyMsg("s"))

	assert.Equal(t, domain.ReadyToShame, m.Bell().State())
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "no player")
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		t.Run(k, func(t *testing.T) {
			m, player := newTestModel(t)

			_, cmd := m.Update(keyMsg(k))

			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Equal(t, 1, player.stops)
		})
	}
}

func TestModel_CustomKeys(t *testing.T) {
	player := newFakePlayer()
	m := NewModel(player, NewKeyMap(config.KeyBindingsConfig{"shake": {"x"}, "finger": {"space"}}))

	m.Update(keyMsg(" "))
	m.Update(keyMsg("s"))
	assert.Equal(t, domain.ReadyToShame, m.Bell().State())

	m.Update(keyMsg("x"))
	assert.Equal(t, domain.Shame, m.Bell().State())
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()

	assert.Contains(t, out, "█")
	assert.Contains(t, out, domain.PromptHoldUpsideDown)
	assert.Contains(t, out, "idle")
}

func TestFlipText(t *testing.T) {
	assert.Equal(t, "NO", FlipText("ON"))
	assert.Equal(t, "Ԁ∀⊥", FlipText("TAP"))
	assert.Equal(t, "˥˥Ǝꓭ ƎH⊥ ⅁NIꓤ", FlipText("RING THE BELL"))
	assert.Equal(t, "", FlipText(""))
}

func TestRenderDisc(t *testing.T) {
	lines := strings.Split(renderDisc(2), "\n")

	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 9, utf8.RuneCountInString(line))
	}
	assert.Contains(t, lines[2], "█████████", "widest at the middle row")
}

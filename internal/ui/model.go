// Package ui is the bubbletea front end: the bell drawn with lipgloss in a
// terminal, driven by the mouse and the keyboard.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ebimath "github.com/edwinsyarief/ebi-math"

	"github.com/Adlai-Holler/ShameBell/internal/adapters/sound"
	"github.com/Adlai-Holler/ShameBell/internal/domain"
	"github.com/Adlai-Holler/ShameBell/internal/logging"
	"github.com/Adlai-Holler/ShameBell/internal/motion"
	"github.com/Adlai-Holler/ShameBell/internal/ports"
	"github.com/Adlai-Holler/ShameBell/internal/services"
	"github.com/Adlai-Holler/ShameBell/internal/theme"
)

// Touch ids for the two pointing devices a terminal has
const (
	fingerTouchID domain.TouchID = 1
	mouseTouchID  domain.TouchID = 0
)

// Player is a sound player that reports playback ends on a channel
type Player interface {
	ports.SoundPlayer
	Finished() <-chan sound.PlaybackResult
	Generation() uint64
}

// Model is the bubbletea model for the terminal bell
type Model struct {
	bell      *services.BellService
	detector  *motion.Detector
	err       error
	finger    bool
	height    int
	help      help.Model
	keys      KeyMap
	mouseDown bool
	player    Player
	sensor    *ToggleSensor
	tick      uint64
	view      *TerminalView
	width     int
}

// NewModel creates the terminal model. The bell starts idle and upright.
func NewModel(player Player, keys KeyMap) *Model {
	view := &TerminalView{}
	detector := motion.NewDetector()
	// terminal cells are coarse; one cell of travel counts
	detector.MinTravel = 1

	return &Model{
		bell:     services.NewBellService(player, view),
		detector: detector,
		help:     help.New(),
		keys:     keys,
		player:   player,
		sensor:   &ToggleSensor{},
		view:     view,
	}
}

// Bell exposes the underlying service
func (m *Model) Bell() *services.BellService {
	return m.bell
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.waitForAudio()
}

// waitForAudio blocks on the player's next playback result
func (m *Model) waitForAudio() tea.Cmd {
	finished := m.player.Finished()
	return func() tea.Msg {
		return audioEndedMsg{result: <-finished}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.updateOrientation()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.BlurMsg:
		logging.Logger.Debug("Terminal lost focus")
		m.mouseDown = false
		m.finger = false
		m.detector.Reset()
		m.report(m.bell.CancelAllTouches())
		m.report(m.bell.AudioInterrupted())
		return m, nil

	case audioEndedMsg:
		if msg.result.Generation != m.player.Generation() {
			logging.Logger.Debug("Ignoring result of an earlier playback", "generation", msg.result.Generation)
			return m, m.waitForAudio()
		}
		if msg.result.Interrupted {
			logging.Logger.Debug("Playback interrupted", "error", msg.result.Err)
			m.report(m.bell.AudioInterrupted())
		} else {
			m.report(m.bell.AudioFinished())
		}
		return m, m.waitForAudio()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		if err := m.player.Stop(); err != nil {
			logging.Logger.Warn("Failed to stop playback on quit", "error", err)
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Shake):
		m.report(m.bell.Shake())
	case key.Matches(msg, m.keys.Flip):
		m.sensor.Toggle()
		m.updateOrientation()
	case key.Matches(msg, m.keys.Finger):
		if m.finger {
			m.finger = false
			m.report(m.bell.EndTouch(fingerTouchID))
		} else {
			m.finger = true
			m.report(m.bell.BeginTouch(fingerTouchID))
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.mouseDown = true
		m.detector.Reset()
		m.report(m.bell.BeginTouch(mouseTouchID))
	case tea.MouseActionRelease:
		// some terminals don't say which button was released
		if !m.mouseDown {
			return
		}
		m.mouseDown = false
		m.detector.Reset()
		m.report(m.bell.EndTouch(mouseTouchID))
	case tea.MouseActionMotion:
		if !m.mouseDown {
			return
		}
		m.tick++
		// cells are about twice as tall as they are wide
		pos := ebimath.V(float64(msg.X), float64(msg.Y)*2)
		if m.detector.Observe(pos, m.tick) {
			logging.Logger.Debug("Mouse wiggle detected")
			m.report(m.bell.Shake())
		}
	}
}

// updateOrientation reports the window shape and the flip toggle. A window
// is portrait when its rows, at two cells per column, reach its width.
func (m *Model) updateOrientation() {
	portrait := m.height*2 >= m.width
	m.bell.OrientationChanged(m.sensor.UpsideDown(), portrait)
}

func (m *Model) report(_ domain.Transition, err error) {
	m.err = err
	if err != nil {
		logging.Logger.Warn("Bell event failed", "error", err, "state", m.bell.State())
	}
}

// View implements tea.Model
func (m *Model) View() string {
	radius := m.discRadius()
	disc := renderDisc(radius)
	if m.view.Faint() {
		disc = theme.BellFaintStyle.Render(disc)
	} else {
		disc = theme.BellStyle.Render(disc)
	}

	label := theme.LabelStyle.Render(m.view.Label())
	body := lipgloss.JoinVertical(lipgloss.Center, disc, "", label)

	footer := lipgloss.JoinVertical(lipgloss.Left, m.statusLine(), m.help.View(m.keys))

	if m.width == 0 || m.height == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, body, footer)
	}

	bodyHeight := max(m.height-lipgloss.Height(footer), lipgloss.Height(body))
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	return lipgloss.JoinVertical(lipgloss.Left, placed, footer)
}

func (m *Model) discRadius() int {
	if m.width == 0 || m.height == 0 {
		return 5
	}
	// room for the label, status line and help below the disc
	return max(2, min((m.width-1)/4, (m.height-6)/2))
}

func (m *Model) statusLine() string {
	state := m.bell.State()
	facing := "upright"
	if m.bell.UpsideDown() {
		facing = "upside down"
	}

	parts := []string{
		theme.StatusKeyStyle.Render("state ") + theme.StateStyle(state).Render(state.String()),
		theme.StatusKeyStyle.Render("phone ") + theme.StatusValueStyle.Render(facing),
	}
	if m.bell.Touching() {
		parts = append(parts, theme.StatusValueStyle.Render("touching"))
	}
	if m.err != nil {
		parts = append(parts, theme.ErrorStyle.Render(fmt.Sprintf("error: %v", m.err)))
	}
	return strings.Join(parts, theme.StatusKeyStyle.Render("  ·  "))
}

// renderDisc draws a filled circle of the given radius in rows, using two
// columns per row unit so it looks round
func renderDisc(radius int) string {
	var b strings.Builder
	r2 := float64(radius*radius) + float64(radius)/2
	for y := -radius; y <= radius; y++ {
		for x := -2 * radius; x <= 2*radius; x++ {
			fx := float64(x) / 2
			if fx*fx+float64(y*y) <= r2 {
				b.WriteRune('█')
			} else {
				b.WriteRune(' ')
			}
		}
		if y < radius {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

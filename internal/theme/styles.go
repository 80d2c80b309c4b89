package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Adlai-Holler/ShameBell/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Bell styles
var (
	BellFaintStyle = lipgloss.NewStyle().
			Foreground(ColorBell).
			Faint(true)

	BellStyle = lipgloss.NewStyle().
			Foreground(ColorBell)

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorLabel)
)

// State styles
var (
	IdleStateStyle = lipgloss.NewStyle().
			Foreground(ColorIdle)

	ReadyStateStyle = lipgloss.NewStyle().
			Foreground(ColorReady).
			Bold(true)

	ShameStateStyle = lipgloss.NewStyle().
			Foreground(ColorShame).
			Bold(true)
)

// Status bar styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	StatusValueStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight)
)

// Table styles
var (
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(ColorTableBorder)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorTableHeader).
				Padding(0, 1)
)

// StateStyle returns the style used to render a bell state
func StateStyle(state domain.State) lipgloss.Style {
	switch state {
	case domain.ReadyToShame:
		return ReadyStateStyle
	case domain.Shame:
		return ShameStateStyle
	default:
		return IdleStateStyle
	}
}

package ui

import "github.com/Adlai-Holler/ShameBell/internal/adapters/sound"

// audioEndedMsg is sent when the player process exits on its own
type audioEndedMsg struct {
	result sound.PlaybackResult
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresent(t *testing.T) {
	tests := []struct {
		name       string
		state      State
		upsideDown bool
		expected   Presentation
	}{
		{
			name:     "idle upright",
			state:    Idle,
			expected: Presentation{ImageAlpha: IdleImageAlpha, InfoText: PromptHoldUpsideDown, InfoVisible: true},
		},
		{
			name:       "idle upside down",
			state:      Idle,
			upsideDown: true,
			expected:   Presentation{ImageAlpha: IdleImageAlpha, InfoText: PromptTapAndHold, InfoVisible: true, InfoFlipped: true},
		},
		{
			name:     "armed",
			state:    ReadyToShame,
			expected: Presentation{ImageAlpha: ActiveImageAlpha, InfoText: PromptRingTheBell, InfoVisible: true},
		},
		{
			name:       "armed upside down",
			state:      ReadyToShame,
			upsideDown: true,
			expected:   Presentation{ImageAlpha: ActiveImageAlpha, InfoText: PromptRingTheBell, InfoVisible: true, InfoFlipped: true},
		},
		{
			name:     "ringing hides the prompt",
			state:    Shame,
			expected: Presentation{ImageAlpha: ActiveImageAlpha, InfoText: PromptRingTheBell, InfoVisible: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Present(tt.state, tt.upsideDown))
		})
	}
}

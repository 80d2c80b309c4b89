package screen

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adlai-Holler/ShameBell/internal/config"
)

func TestParseKeys_Defaults(t *testing.T) {
	keys, err := ParseKeys(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultKeys(), keys)
}

func TestParseKeys_Custom(t *testing.T) {
	keys, err := ParseKeys(config.KeyBindingsConfig{
		BindingShake: {"Q"},
		BindingFlip:  {"U", "F"},
		BindingQuit:  {},
	})

	require.NoError(t, err)
	assert.Equal(t, []ebiten.Key{ebiten.KeyQ}, keys.Shake)
	assert.Equal(t, []ebiten.Key{ebiten.KeyU, ebiten.KeyF}, keys.Flip)
	assert.Equal(t, []ebiten.Key{ebiten.KeyEscape}, keys.Quit, "empty binding keeps the default")
}

func TestParseKeys_Errors(t *testing.T) {
	tests := []struct {
		name   string
		custom config.KeyBindingsConfig
	}{
		{"unknown binding", config.KeyBindingsConfig{"wobble": {"W"}}},
		{"unknown key", config.KeyBindingsConfig{BindingShake: {"NotAKey"}}},
		{"duplicate key", config.KeyBindingsConfig{BindingShake: {"S"}, BindingFlip: {"S"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKeys(tt.custom)
			assert.Error(t, err)
		})
	}
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, []string{"S", "F11"}, KeyNames([]ebiten.Key{ebiten.KeyS, ebiten.KeyF11}))
}

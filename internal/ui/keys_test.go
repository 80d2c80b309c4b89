package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Adlai-Holler/ShameBell/internal/config"
)

func TestNewKeyMap_Defaults(t *testing.T) {
	keys := NewKeyMap(nil)

	assert.Equal(t, []string{"s"}, keys.Shake.Keys())
	assert.Equal(t, []string{" "}, keys.Finger.Keys())
	assert.Equal(t, "space", keys.Finger.Help().Key)
	assert.Equal(t, "q/esc", keys.Quit.Help().Key)
}

func TestNewKeyMap_Custom(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{
		"flip":  {"f", "U"},
		"shake": {},
	})

	assert.Equal(t, []string{"f", "U"}, keys.Flip.Keys())
	assert.Equal(t, "f/U", keys.Flip.Help().Key)
	assert.Equal(t, []string{"s"}, keys.Shake.Keys(), "empty custom binding keeps the default")
}

func TestGetValidKeyNames(t *testing.T) {
	assert.Equal(t, []string{"finger", "flip", "force_quit", "help", "quit", "shake"}, GetValidKeyNames())
}

func TestKeyDefinitionsValidate(t *testing.T) {
	custom := config.KeyBindingsConfig{"shake": {"x"}, "flip": {"x"}}

	assert.Error(t, custom.Validate(GetValidKeyNames()))
	assert.NoError(t, config.KeyBindingsConfig{"shake": {"x"}}.Validate(GetValidKeyNames()))
}

func TestGetKeyDefinition(t *testing.T) {
	def := GetKeyDefinition("shake")
	if assert.NotNil(t, def) {
		assert.Equal(t, "shake", def.Help)
	}
	assert.Nil(t, GetKeyDefinition("nope"))
}

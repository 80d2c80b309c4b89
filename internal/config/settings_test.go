package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("SHAMEBELL_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))
}

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("SHAMEBELL_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_ParsesFields(t *testing.T) {
	writeSettings(t, `{
		"debug": true,
		"frontend": "terminal",
		"sound_file": "/tmp/shame.mp3",
		"volume": 0.5,
		"keys": {"shake": "x", "flip": ["u", "f"]}
	}`)

	settings, err := LoadSettings()

	require.NoError(t, err)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	assert.Equal(t, FrontendTerminal, settings.Frontend)
	assert.Equal(t, "/tmp/shame.mp3", settings.SoundFile)
	require.NotNil(t, settings.Volume)
	assert.Equal(t, 0.5, *settings.Volume)
	assert.Equal(t, KeyBindingValue{"x"}, settings.Keys["shake"])
	assert.Equal(t, KeyBindingValue{"u", "f"}, settings.Keys["flip"])
}

func TestLoadSettings_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad json", `{"debug": `},
		{"unknown frontend", `{"frontend": "hologram"}`},
		{"volume too loud", `{"volume": 1.5}`},
		{"zero width", `{"window_width": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeSettings(t, tt.content)

			_, err := LoadSettings()

			assert.Error(t, err)
		})
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Setenv("SHAMEBELL_HOME", filepath.Join(t.TempDir(), "fresh"))
	volume := 0.25

	err := SaveSettings(&Settings{Frontend: FrontendScreen, Volume: &volume, Keys: KeyBindingsConfig{"shake": {"z"}}})
	require.NoError(t, err)

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, FrontendScreen, loaded.Frontend)
	assert.Equal(t, 0.25, *loaded.Volume)
	assert.Equal(t, KeyBindingValue{"z"}, loaded.Keys["shake"])
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"shake", "flip", "quit"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{"nil", nil, ""},
		{"ok", KeyBindingsConfig{"shake": {"s"}, "flip": {"u", "f"}}, ""},
		{"empty list uses default", KeyBindingsConfig{"shake": {}}, ""},
		{"unknown name", KeyBindingsConfig{"dance": {"d"}}, "unknown key binding 'dance'"},
		{"empty key", KeyBindingsConfig{"shake": {""}}, "contains empty value"},
		{"duplicate", KeyBindingsConfig{"shake": {"s"}, "quit": {"s"}}, "is assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, FrontendScreen, example["frontend"])
	assert.Equal(t, true, example["debug"])
	assert.Equal(t, 100, example["max_log_files"])
	assert.Contains(t, example, "keys")
	assert.Contains(t, example, "screen_keys")
	assert.Contains(t, example, "sound_file")
}

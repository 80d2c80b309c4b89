package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Adlai-Holler/ShameBell/internal/paths"
)

// Front end names accepted by the frontend setting
const (
	FrontendScreen   = "screen"
	FrontendTerminal = "terminal"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "shake", "flip"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// validNames comes from the front end that owns the bindings.
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		if len(keys) == 0 {
			continue // Not configured, will use default
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of $SHAMEBELL_HOME/settings.json
type Settings struct {
	Debug        *bool             `json:"debug,omitempty"`
	Frontend     string            `json:"frontend,omitempty"`
	Fullscreen   *bool             `json:"fullscreen,omitempty"`
	Keys         KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles  *int              `json:"max_log_files,omitempty"`
	ScreenKeys   KeyBindingsConfig `json:"screen_keys,omitempty"`
	SoundFile    string            `json:"sound_file,omitempty"`
	Volume       *float64          `json:"volume,omitempty"`
	WindowHeight *int              `json:"window_height,omitempty"`
	WindowWidth  *int              `json:"window_width,omitempty"`
}

// Validate checks values that JSON decoding alone can't catch
func (s *Settings) Validate() error {
	switch s.Frontend {
	case "", FrontendScreen, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend '%s' (expected %s or %s)", s.Frontend, FrontendScreen, FrontendTerminal)
	}
	if s.Volume != nil && (*s.Volume < 0 || *s.Volume > 1) {
		return fmt.Errorf("volume must be between 0 and 1, got %v", *s.Volume)
	}
	if s.WindowWidth != nil && *s.WindowWidth < 1 {
		return fmt.Errorf("window_width must be positive")
	}
	if s.WindowHeight != nil && *s.WindowHeight < 1 {
		return fmt.Errorf("window_height must be positive")
	}
	return nil
}

// GetSettingsPath returns the settings file location
func GetSettingsPath() string {
	return paths.GetSettingsPath()
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	return paths.ExpandPath(path)
}

// LoadSettings loads settings from $SHAMEBELL_HOME/settings.json (or ~/.shamebell/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.SoundFile != "" {
		settings.SoundFile = ExpandPath(settings.SoundFile)
	}

	return &settings, nil
}

// SaveSettings saves settings to $SHAMEBELL_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// FileStore implements ports.SettingsStore on top of settings.json
type FileStore struct{}

// Load reads settings.json
func (FileStore) Load() (*Settings, error) {
	return LoadSettings()
}

// Save writes settings.json
func (FileStore) Save(settings *Settings) error {
	return SaveSettings(settings)
}

package ports

import "github.com/Adlai-Holler/ShameBell/internal/config"

// SettingsStore persists user settings
type SettingsStore interface {
	// Load returns the stored settings, empty when none exist yet
	Load() (*config.Settings, error)

	// Save replaces the stored settings
	Save(settings *config.Settings) error
}

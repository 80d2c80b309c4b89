package services

import (
	"fmt"

	"github.com/Adlai-Holler/ShameBell/internal/config"
	"github.com/Adlai-Holler/ShameBell/internal/logging"
	"github.com/Adlai-Holler/ShameBell/internal/ports"
)

// SettingsService handles changes to the user's settings file
type SettingsService struct {
	store ports.SettingsStore
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(store ports.SettingsStore) *SettingsService {
	return &SettingsService{
		store: store,
	}
}

// Load returns the stored settings
func (s *SettingsService) Load() (*config.Settings, error) {
	settings, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// Update loads the settings, applies change and saves them if they are
// still valid
func (s *SettingsService) Update(change func(settings *config.Settings) error) error {
	settings, err := s.Load()
	if err != nil {
		return err
	}

	if err := change(settings); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.store.Save(settings); err != nil {
		logging.Logger.Error("Failed to save settings", "error", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Settings saved")
	return nil
}

// SetKeyBinding assigns keys to a binding of the given front end.
// validNames are the bindings that front end understands.
func (s *SettingsService) SetKeyBinding(frontend, name string, keys []string, validNames []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "frontend", frontend, "key", name, "values", keys)

	return s.Update(func(settings *config.Settings) error {
		bindings := settings.Keys
		if frontend == config.FrontendScreen {
			bindings = settings.ScreenKeys
		}
		if bindings == nil {
			bindings = make(config.KeyBindingsConfig)
		}

		bindings[name] = keys
		if err := bindings.Validate(validNames); err != nil {
			return fmt.Errorf("conflict: %w", err)
		}

		if frontend == config.FrontendScreen {
			settings.ScreenKeys = bindings
		} else {
			settings.Keys = bindings
		}
		return nil
	})
}

// SetSoundFile stores the sound played when the bell rings. An empty path
// restores the default.
func (s *SettingsService) SetSoundFile(path string) error {
	logging.Logger.Info("Setting sound file", "path", path)
	return s.Update(func(settings *config.Settings) error {
		settings.SoundFile = path
		return nil
	})
}

// SetVolume stores the playback volume in [0, 1]
func (s *SettingsService) SetVolume(volume float64) error {
	logging.Logger.Info("Setting volume", "volume", volume)
	return s.Update(func(settings *config.Settings) error {
		settings.Volume = &volume
		return nil
	})
}

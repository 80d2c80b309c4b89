package screen

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Adlai-Holler/ShameBell/internal/config"
)

// Binding names accepted under screen_keys in settings.json
const (
	BindingFlip       = "flip"
	BindingFullscreen = "fullscreen"
	BindingQuit       = "quit"
	BindingShake      = "shake"
)

// BindingNames lists the configurable screen bindings
var BindingNames = []string{BindingFlip, BindingFullscreen, BindingQuit, BindingShake}

// Keys maps screen actions to keyboard keys
type Keys struct {
	Flip       []ebiten.Key
	Fullscreen []ebiten.Key
	Quit       []ebiten.Key
	Shake      []ebiten.Key
}

// DefaultKeys returns the built-in screen bindings
func DefaultKeys() Keys {
	return Keys{
		Flip:       []ebiten.Key{ebiten.KeyU},
		Fullscreen: []ebiten.Key{ebiten.KeyF11},
		Quit:       []ebiten.Key{ebiten.KeyEscape},
		Shake:      []ebiten.Key{ebiten.KeyS},
	}
}

// ParseKeys applies custom bindings over the defaults. Key names are the
// ones Ebitengine uses ("S", "Space", "ArrowUp", "F11").
func ParseKeys(custom config.KeyBindingsConfig) (Keys, error) {
	if err := custom.Validate(BindingNames); err != nil {
		return Keys{}, err
	}

	keys := DefaultKeys()
	for name, values := range custom {
		if len(values) == 0 {
			continue
		}
		parsed, err := parseKeyNames(values)
		if err != nil {
			return Keys{}, fmt.Errorf("key binding '%s': %w", name, err)
		}
		switch name {
		case BindingFlip:
			keys.Flip = parsed
		case BindingFullscreen:
			keys.Fullscreen = parsed
		case BindingQuit:
			keys.Quit = parsed
		case BindingShake:
			keys.Shake = parsed
		}
	}
	return keys, nil
}

func parseKeyNames(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(name)); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// KeyNames returns the Ebitengine names of keys
func KeyNames(keys []ebiten.Key) []string {
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = key.String()
	}
	return names
}

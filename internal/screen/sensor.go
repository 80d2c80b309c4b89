package screen

import "github.com/hajimehoshi/ebiten/v2"

// KeyboardSensor implements ports.OrientationSensor for desktops, where the
// device can't be turned over: a key toggles the upside-down flag.
type KeyboardSensor struct {
	keys       []ebiten.Key
	upsideDown bool
}

// NewKeyboardSensor creates a sensor toggled by any of keys
func NewKeyboardSensor(keys []ebiten.Key) *KeyboardSensor {
	return &KeyboardSensor{keys: keys}
}

// UpsideDown reports the current flag
func (s *KeyboardSensor) UpsideDown() bool {
	return s.upsideDown
}

// Toggle turns the virtual device over
func (s *KeyboardSensor) Toggle() {
	s.upsideDown = !s.upsideDown
}

// Update polls the keyboard; call once per tick
func (s *KeyboardSensor) Update() {
	if anyJustPressed(s.keys) {
		s.Toggle()
	}
}

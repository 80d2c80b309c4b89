package ui

// ToggleSensor implements ports.OrientationSensor with a flag the user
// flips from the keyboard
type ToggleSensor struct {
	upsideDown bool
}

// UpsideDown reports the current flag
func (s *ToggleSensor) UpsideDown() bool {
	return s.upsideDown
}

// Toggle turns the virtual phone over
func (s *ToggleSensor) Toggle() {
	s.upsideDown = !s.upsideDown
}

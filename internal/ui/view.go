package ui

// TerminalView implements ports.BellView by holding the values the model
// renders on its next View call
type TerminalView struct {
	alpha   float64
	flipped bool
	text    string
	visible bool
}

// SetImageAlpha stores the disc opacity
func (v *TerminalView) SetImageAlpha(alpha float64) {
	v.alpha = alpha
}

// SetInfoText stores the label
func (v *TerminalView) SetInfoText(text string, visible bool) {
	v.text = text
	v.visible = visible
}

// SetInfoTransform stores the label rotation
func (v *TerminalView) SetInfoTransform(flipped bool) {
	v.flipped = flipped
}

// Label returns the text as it should appear on screen, or "" when hidden
func (v *TerminalView) Label() string {
	if !v.visible {
		return ""
	}
	if v.flipped {
		return FlipText(v.text)
	}
	return v.text
}

// Faint reports whether the disc is drawn dimmed
func (v *TerminalView) Faint() bool {
	return v.alpha < 1
}

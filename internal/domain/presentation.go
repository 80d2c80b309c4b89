package domain

// Prompt texts shown in the info label
const (
	PromptHoldUpsideDown = "HOLD PHONE UPSIDE DOWN"
	PromptRingTheBell    = "RING THE BELL"
	PromptTapAndHold     = "TAP AND HOLD"
)

// Image opacities for the bell disc
const (
	ActiveImageAlpha = 1.0
	IdleImageAlpha   = 0.3
)

// Presentation is what the view should show for a given state
type Presentation struct {
	ImageAlpha  float64
	InfoFlipped bool // label turned 180 degrees so it reads right-side-up
	InfoText    string
	InfoVisible bool
}

// Present computes the presentation for state. upsideDown is the last
// portrait orientation reported by the device.
func Present(state State, upsideDown bool) Presentation {
	p := Presentation{
		ImageAlpha:  ActiveImageAlpha,
		InfoFlipped: upsideDown,
	}

	switch state {
	case Idle:
		p.ImageAlpha = IdleImageAlpha
		p.InfoVisible = true
		if upsideDown {
			p.InfoText = PromptTapAndHold
		} else {
			p.InfoText = PromptHoldUpsideDown
		}
	case ReadyToShame:
		p.InfoText = PromptRingTheBell
		p.InfoVisible = true
	case Shame:
		// hidden, but keep the last prompt so the view can fade it out
		p.InfoText = PromptRingTheBell
	}

	return p
}

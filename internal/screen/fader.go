package screen

// Ticks is a duration measured in game updates
type Ticks uint32

// Fader eases a value toward a target over a number of ticks, with a cubic
// smoothstep. Retargeting mid-fade starts from the current value.
type Fader struct {
	duration Ticks
	elapsed  Ticks
	from     float64
	to       float64
}

// NewFader returns a fader resting at value
func NewFader(value float64) Fader {
	return Fader{from: value, to: value}
}

// FadeTo starts easing toward target. Asking for the current target again
// does not restart the fade.
func (f *Fader) FadeTo(target float64, duration Ticks) {
	if target == f.to {
		return
	}
	f.from = f.Value()
	f.to = target
	f.elapsed = 0
	f.duration = duration
}

// Settle jumps to the target
func (f *Fader) Settle() {
	f.from = f.to
	f.elapsed = f.duration
}

// Update advances the fade by one tick
func (f *Fader) Update() {
	if f.elapsed < f.duration {
		f.elapsed++
	}
}

// IsFading reports whether the value is still moving
func (f *Fader) IsFading() bool {
	return f.elapsed < f.duration
}

// Target returns the value the fader is heading to
func (f *Fader) Target() float64 {
	return f.to
}

// Value returns the current eased value
func (f *Fader) Value() float64 {
	if f.elapsed >= f.duration {
		return f.to
	}
	t := float64(f.elapsed) / float64(f.duration)
	return f.from + (f.to-f.from)*smoothstep(t)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

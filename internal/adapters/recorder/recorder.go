package recorder

import (
	"fmt"
	"strings"
)

// Recorder implements ports.SoundPlayer and ports.BellView by writing down
// every call. It backs headless replays.
type Recorder struct {
	// PlayErr, when set, is returned by Play and playback does not start
	PlayErr error

	alpha   float64
	calls   []string
	flipped bool
	playing bool
	text    string
	visible bool
}

// New creates an empty recorder
func New() *Recorder {
	return &Recorder{}
}

// IsPlaying reports whether Play was called without a matching Stop
func (r *Recorder) IsPlaying() bool {
	return r.playing
}

// Play records a playback start
func (r *Recorder) Play() error {
	if r.PlayErr != nil {
		r.record("play failed")
		return r.PlayErr
	}
	r.playing = true
	r.record("play")
	return nil
}

// Stop records a playback stop
func (r *Recorder) Stop() error {
	r.playing = false
	r.record("stop")
	return nil
}

// Finish simulates the sound reaching its end
func (r *Recorder) Finish() {
	r.playing = false
}

// SetImageAlpha records the disc opacity
func (r *Recorder) SetImageAlpha(alpha float64) {
	r.alpha = alpha
	r.record(fmt.Sprintf("alpha %.1f", alpha))
}

// SetInfoText records the label text and visibility
func (r *Recorder) SetInfoText(text string, visible bool) {
	r.text = text
	r.visible = visible
	if visible {
		r.record(fmt.Sprintf("text %q", text))
	} else {
		r.record("text hidden")
	}
}

// SetInfoTransform records the label rotation
func (r *Recorder) SetInfoTransform(flipped bool) {
	r.flipped = flipped
	if flipped {
		r.record("label flipped")
	} else {
		r.record("label upright")
	}
}

// Alpha returns the last recorded opacity
func (r *Recorder) Alpha() float64 {
	return r.alpha
}

// Label returns the last recorded label state
func (r *Recorder) Label() (text string, visible, flipped bool) {
	return r.text, r.visible, r.flipped
}

// Calls returns every call recorded since the last Drain
func (r *Recorder) Calls() []string {
	return append([]string(nil), r.calls...)
}

// Drain returns the recorded calls and forgets them
func (r *Recorder) Drain() []string {
	calls := r.calls
	r.calls = nil
	return calls
}

// String joins the pending calls for display
func (r *Recorder) String() string {
	return strings.Join(r.calls, ", ")
}

func (r *Recorder) record(call string) {
	r.calls = append(r.calls, call)
}

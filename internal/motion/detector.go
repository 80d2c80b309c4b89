// Package motion turns a stream of pointer positions into discrete shake
// triggers, for devices that can't report accelerometer shakes.
package motion

import ebimath "github.com/edwinsyarief/ebi-math"

// Detector reports a shake when the tracked position reverses direction
// often enough within a short window. Ticks are in whatever clock unit
// the caller uses (game ticks, milliseconds...), as long as it is
// consistent and non-decreasing.
type Detector struct {
	Cooldown  uint64  // ticks to stay quiet after a shake
	MinTravel float64 // per-step travel needed for a step to count
	Reversals int     // direction reversals needed for a shake
	Window    uint64  // ticks a reversal stays relevant

	dirX, dirY    int
	hasLast       bool
	last          ebimath.Vector
	quietUntil    uint64
	reversalTicks []uint64
}

// NewDetector returns a detector tuned for 60 ticks per second and
// positions in pixels
func NewDetector() *Detector {
	return &Detector{
		Cooldown:  30,
		MinTravel: 6,
		Reversals: 4,
		Window:    45,
	}
}

// Observe feeds the next position and reports whether it completes a shake
func (d *Detector) Observe(pos ebimath.Vector, tick uint64) bool {
	if !d.hasLast {
		d.last, d.hasLast = pos, true
		return false
	}

	dx, dy := pos.X-d.last.X, pos.Y-d.last.Y
	d.last = pos
	d.track(&d.dirX, dx, tick)
	d.track(&d.dirY, dy, tick)

	// drop reversals that fell out of the window
	kept := d.reversalTicks[:0]
	for _, t := range d.reversalTicks {
		if t+d.Window >= tick {
			kept = append(kept, t)
		}
	}
	d.reversalTicks = kept

	if tick < d.quietUntil {
		return false
	}
	if len(d.reversalTicks) < d.Reversals {
		return false
	}

	d.reversalTicks = d.reversalTicks[:0]
	d.quietUntil = tick + d.Cooldown
	return true
}

func (d *Detector) track(dir *int, delta float64, tick uint64) {
	if ebimath.Abs(delta) < d.MinTravel {
		return
	}
	sign := 1
	if delta < 0 {
		sign = -1
	}
	if *dir != 0 && sign != *dir {
		d.reversalTicks = append(d.reversalTicks, tick)
	}
	*dir = sign
}

// Reset forgets the tracked history, e.g. when the finger lifts
func (d *Detector) Reset() {
	d.dirX, d.dirY = 0, 0
	d.hasLast = false
	d.reversalTicks = d.reversalTicks[:0]
}

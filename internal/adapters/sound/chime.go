package sound

import "math"

// ChimeDuration is the length of the built-in bell sound in seconds
const ChimeDuration = 2.8

// bell partials, relative to the strike frequency. Bells are inharmonic.
var bellPartials = []struct {
	ratio  float64
	volume float64
	decay  float64
}{
	{1.0, 0.50, 1.6},
	{2.0, 0.25, 1.0},
	{2.4, 0.18, 0.8},
	{3.0, 0.12, 0.6},
	{4.2, 0.08, 0.4},
}

// strikes of the bell: three slow, low tolls
var bellStrikes = []struct {
	freq  float64
	start float64
}{
	{196.00, 0.0},
	{196.00, 0.9},
	{196.00, 1.8},
}

// Chime synthesizes the built-in bell as 16-bit little endian stereo PCM,
// the format audio.Context.NewPlayerFromBytes expects.
func Chime(sampleRate int) []byte {
	numSamples := int(float64(sampleRate) * ChimeDuration)
	samples := make([]byte, numSamples*4) // 2 bytes * 2 channels

	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		sample := 0.0

		for _, strike := range bellStrikes {
			if t < strike.start {
				continue
			}
			strikeT := t - strike.start

			attack := 0.005
			attackEnvelope := 1.0
			if strikeT < attack {
				attackEnvelope = (1 - math.Cos(math.Pi*strikeT/attack)) / 2
			}

			for _, partial := range bellPartials {
				envelope := attackEnvelope * math.Exp(-strikeT/partial.decay)
				sample += math.Sin(2*math.Pi*strike.freq*partial.ratio*strikeT) * partial.volume * envelope
			}
		}

		// fade the tail so the buffer doesn't end with a click
		if remaining := ChimeDuration - t; remaining < 0.1 {
			sample *= remaining / 0.1
		}

		if sample > 1.0 {
			sample = 1.0
		} else if sample < -1.0 {
			sample = -1.0
		}

		value := int16(sample * 14000)

		idx := i * 4
		samples[idx] = byte(value)
		samples[idx+1] = byte(value >> 8)
		samples[idx+2] = byte(value)
		samples[idx+3] = byte(value >> 8)
	}

	return samples
}

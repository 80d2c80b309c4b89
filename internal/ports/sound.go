package ports

// SoundPlayer plays the bell sound effect
type SoundPlayer interface {
	// IsPlaying reports whether the sound is currently audible
	IsPlaying() bool

	// Play rewinds the sound to its start and begins playback
	Play() error

	// Stop halts playback. Safe to call when nothing is playing.
	Stop() error
}

package sound

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Adlai-Holler/ShameBell/internal/logging"
)

// EbitenPlayer implements ports.SoundPlayer on top of an Ebitengine audio
// player. It must be driven from the game loop: Poll detects the end of
// playback.
type EbitenPlayer struct {
	player     *audio.Player
	source     string
	wasPlaying bool
}

// NewEbitenPlayer loads the sound at path into ctx. An empty path selects the
// built-in chime; a path that can't be read or decoded is an error.
func NewEbitenPlayer(ctx *audio.Context, path string, volume float64) (*EbitenPlayer, error) {
	p := &EbitenPlayer{source: "built-in chime"}

	if path == "" {
		p.player = ctx.NewPlayerFromBytes(Chime(ctx.SampleRate()))
	} else {
		resolved, err := ResolveSoundFile(path)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(resolved)
		if err != nil {
			return nil, fmt.Errorf("failed to read sound file: %w", err)
		}
		stream, err := Decode(ctx.SampleRate(), resolved, data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", resolved, err)
		}
		player, err := ctx.NewPlayer(stream)
		if err != nil {
			return nil, fmt.Errorf("failed to create audio player: %w", err)
		}
		p.player = player
		p.source = resolved
	}

	p.player.SetVolume(volume)
	logging.Logger.Info("Sound loaded", "source", p.source, "volume", volume)
	return p, nil
}

// Source describes where the sound came from
func (p *EbitenPlayer) Source() string {
	return p.source
}

// IsPlaying reports whether the sound is audible
func (p *EbitenPlayer) IsPlaying() bool {
	return p.player.IsPlaying()
}

// Play rewinds and starts the sound
func (p *EbitenPlayer) Play() error {
	if err := p.player.SetPosition(0); err != nil {
		return fmt.Errorf("failed to rewind sound: %w", err)
	}
	p.player.Play()
	p.wasPlaying = true
	return nil
}

// Stop pauses and rewinds the sound. Stopping is not reported by Poll.
func (p *EbitenPlayer) Stop() error {
	p.player.Pause()
	p.wasPlaying = false
	if err := p.player.SetPosition(0); err != nil {
		return fmt.Errorf("failed to rewind sound: %w", err)
	}
	return nil
}

// Poll reports whether playback reached its end since the last call
func (p *EbitenPlayer) Poll() bool {
	playing := p.player.IsPlaying()
	ended := p.wasPlaying && !playing
	p.wasPlaying = playing
	return ended
}

// Close releases the underlying player
func (p *EbitenPlayer) Close() error {
	return p.player.Close()
}

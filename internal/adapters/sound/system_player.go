package sound

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/Adlai-Holler/ShameBell/internal/logging"
)

// PlaybackResult is delivered when a system player process exits on its own
type PlaybackResult struct {
	Err         error
	Generation  uint64 // matches Generation() while no newer playback has started
	Interrupted bool   // the process died instead of finishing the sound
}

// SystemPlayer implements ports.SoundPlayer by running the platform's
// command line audio player (afplay, paplay, aplay, powershell).
type SystemPlayer struct {
	file       string
	finished   chan PlaybackResult
	generation uint64
	mu         sync.Mutex
	newCommand func(file string) (*exec.Cmd, error)
	running    *exec.Cmd
}

// NewSystemPlayer creates a player for the given sound file. It fails with
// domain.ErrSoundUnavailable when no platform player can handle the file.
func NewSystemPlayer(file string) (*SystemPlayer, error) {
	return newSystemPlayer(file, systemCommand)
}

func newSystemPlayer(file string, newCommand func(string) (*exec.Cmd, error)) (*SystemPlayer, error) {
	if _, err := newCommand(file); err != nil {
		return nil, err
	}
	return &SystemPlayer{
		file:       file,
		finished:   make(chan PlaybackResult, 4),
		newCommand: newCommand,
	}, nil
}

// File returns the sound file being played
func (p *SystemPlayer) File() string {
	return p.file
}

// Finished delivers one result per playback that ended without Stop
func (p *SystemPlayer) Finished() <-chan PlaybackResult {
	return p.finished
}

// Generation identifies the current playback. Play and Stop advance it.
func (p *SystemPlayer) Generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}

// IsPlaying reports whether a player process is running
func (p *SystemPlayer) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running != nil
}

// Play starts the sound from the beginning, replacing any running playback
func (p *SystemPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.stopLocked(); err != nil {
		return err
	}

	cmd, err := p.newCommand(p.file)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}

	p.generation++
	p.running = cmd
	logging.Logger.Debug("Playback started", "file", p.file, "pid", cmd.Process.Pid)

	go p.wait(cmd, p.generation)
	return nil
}

// Stop kills the running player process, if any
func (p *SystemPlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopLocked()
}

func (p *SystemPlayer) stopLocked() error {
	if p.running == nil {
		return nil
	}

	cmd := p.running
	p.running = nil
	p.generation++ // the waiter must not report this exit

	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to stop playback: %w", err)
	}
	logging.Logger.Debug("Playback stopped", "file", p.file)
	return nil
}

func (p *SystemPlayer) wait(cmd *exec.Cmd, generation uint64) {
	err := cmd.Wait()

	p.mu.Lock()
	if p.generation != generation {
		// stopped or replaced
		p.mu.Unlock()
		return
	}
	p.running = nil
	p.mu.Unlock()

	result := PlaybackResult{Generation: generation}
	if err != nil {
		result.Err = err
		result.Interrupted = true
	}
	logging.Logger.Debug("Playback ended", "file", p.file, "interrupted", result.Interrupted, "error", err)

	select {
	case p.finished <- result:
	default:
		logging.Logger.Warn("Dropping playback result, nobody is listening")
	}
}

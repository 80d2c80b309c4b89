package services

import (
	"errors"
	"fmt"

	"github.com/Adlai-Holler/ShameBell/internal/domain"
	"github.com/Adlai-Holler/ShameBell/internal/logging"
	"github.com/Adlai-Holler/ShameBell/internal/ports"
)

// BellService routes input events into the bell state machine and applies
// the resulting effects to the sound player and the view.
// It is not safe for concurrent use; front ends call it from their event loop.
type BellService struct {
	player     ports.SoundPlayer
	state      domain.State
	touches    map[domain.TouchID]struct{}
	upsideDown bool
	view       ports.BellView
}

// NewBellService creates a BellService in the Idle state and renders the
// initial presentation
func NewBellService(player ports.SoundPlayer, view ports.BellView) *BellService {
	s := &BellService{
		player:  player,
		state:   domain.Idle,
		touches: make(map[domain.TouchID]struct{}),
		view:    view,
	}
	s.render()
	return s
}

// State returns the current bell state
func (s *BellService) State() domain.State {
	return s.state
}

// Touching reports whether at least one touch is active
func (s *BellService) Touching() bool {
	return len(s.touches) > 0
}

// UpsideDown reports the last portrait orientation seen
func (s *BellService) UpsideDown() bool {
	return s.upsideDown
}

// Presentation returns what the view currently shows
func (s *BellService) Presentation() domain.Presentation {
	return domain.Present(s.state, s.upsideDown)
}

// BeginTouch registers a touch. Only the first concurrent touch arms the bell.
func (s *BellService) BeginTouch(id domain.TouchID) (domain.Transition, error) {
	if _, ok := s.touches[id]; ok {
		return s.noop(domain.TouchBegan), nil
	}

	wasEmpty := len(s.touches) == 0
	s.touches[id] = struct{}{}
	if !wasEmpty {
		return s.noop(domain.TouchBegan), nil
	}
	return s.dispatch(domain.TouchBegan)
}

// EndTouch removes a touch. Lifting the last one disarms the bell.
func (s *BellService) EndTouch(id domain.TouchID) (domain.Transition, error) {
	return s.removeTouch(id, "ended")
}

// CancelTouch removes a touch the platform gave up on. Same as EndTouch.
func (s *BellService) CancelTouch(id domain.TouchID) (domain.Transition, error) {
	return s.removeTouch(id, "cancelled")
}

// CancelAllTouches drops every active touch, e.g. when the window loses focus
func (s *BellService) CancelAllTouches() (domain.Transition, error) {
	if len(s.touches) == 0 {
		return s.noop(domain.TouchEnded), nil
	}
	clear(s.touches)
	logging.Logger.Debug("All touches cancelled")
	return s.dispatch(domain.TouchEnded)
}

func (s *BellService) removeTouch(id domain.TouchID, reason string) (domain.Transition, error) {
	if _, ok := s.touches[id]; !ok {
		logging.Logger.Debug("Ignoring unknown touch", "touch", id, "reason", reason)
		return s.noop(domain.TouchEnded), nil
	}

	delete(s.touches, id)
	if len(s.touches) > 0 {
		return s.noop(domain.TouchEnded), nil
	}
	return s.dispatch(domain.TouchEnded)
}

// Shake rings the bell if it is armed
func (s *BellService) Shake() (domain.Transition, error) {
	return s.dispatch(domain.Shake)
}

// AudioFinished reports that playback reached its natural end
func (s *BellService) AudioFinished() (domain.Transition, error) {
	return s.dispatch(domain.AudioFinished)
}

// AudioInterrupted reports that the platform interrupted playback.
// Playback is stopped right away by the resulting transition.
func (s *BellService) AudioInterrupted() (domain.Transition, error) {
	return s.dispatch(domain.AudioInterrupted)
}

// OrientationChanged updates the label orientation. Landscape readings are
// ignored, and the bell state never changes.
func (s *BellService) OrientationChanged(upsideDown, portrait bool) {
	if !portrait {
		logging.Logger.Debug("Ignoring landscape orientation", "upside_down", upsideDown)
		return
	}
	if upsideDown == s.upsideDown {
		return
	}

	s.upsideDown = upsideDown
	logging.Logger.Debug("Orientation changed", "upside_down", upsideDown, "state", s.state)
	s.render()
}

func (s *BellService) noop(event domain.Event) domain.Transition {
	return domain.Transition{Event: event, From: s.state, To: s.state}
}

func (s *BellService) dispatch(event domain.Event) (domain.Transition, error) {
	tr := domain.Step(s.state, event)
	s.state = tr.To

	if tr.Changed() {
		logging.Logger.Debug("Bell transition",
			"event", event,
			"from", tr.From,
			"to", tr.To)
	}

	// a failed effect must not keep the view from catching up
	var errs []error
	for _, effect := range tr.Effects {
		if err := s.apply(effect); err != nil {
			errs = append(errs, err)
		}
	}
	return tr, errors.Join(errs...)
}

func (s *BellService) apply(effect domain.Effect) error {
	switch effect {
	case domain.StartPlayback:
		if s.player.IsPlaying() {
			return nil
		}
		if err := s.player.Play(); err != nil {
			logging.Logger.Error("Failed to start playback", "error", err)
			// don't sit in Shame with nothing playing
			if _, ierr := s.AudioInterrupted(); ierr != nil {
				logging.Logger.Warn("Failed to recover from playback error", "error", ierr)
			}
			return fmt.Errorf("failed to start playback: %w", err)
		}
	case domain.StopPlayback:
		if err := s.player.Stop(); err != nil {
			logging.Logger.Warn("Failed to stop playback", "error", err)
			return fmt.Errorf("failed to stop playback: %w", err)
		}
	case domain.Render:
		s.render()
	}
	return nil
}

func (s *BellService) render() {
	p := s.Presentation()
	s.view.SetImageAlpha(p.ImageAlpha)
	s.view.SetInfoText(p.InfoText, p.InfoVisible)
	s.view.SetInfoTransform(p.InfoFlipped)
}

package domain

import (
	"fmt"
	"slices"
)

// State represents the state of the bell
type State string

const (
	Idle         State = "idle"
	ReadyToShame State = "ready-to-shame"
	Shame        State = "shame"
)

// States lists every bell state in declaration order
var States = []State{Idle, ReadyToShame, Shame}

func (s State) String() string {
	return string(s)
}

// ParseState converts the string form of a state back into a State
func ParseState(s string) (State, error) {
	if state := State(s); slices.Contains(States, state) {
		return state, nil
	}
	return Idle, fmt.Errorf("unknown state %q", s)
}

// Event is an abstract trigger fed to the bell state machine
type Event int

const (
	TouchBegan Event = iota
	TouchEnded
	Shake
	AudioFinished
	AudioInterrupted
)

// Events lists every bell event in declaration order
var Events = []Event{TouchBegan, TouchEnded, Shake, AudioFinished, AudioInterrupted}

func (e Event) String() string {
	switch e {
	case TouchBegan:
		return "touch-began"
	case TouchEnded:
		return "touch-ended"
	case Shake:
		return "shake"
	case AudioFinished:
		return "audio-finished"
	case AudioInterrupted:
		return "audio-interrupted"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// ParseEvent converts the string form of an event back into an Event
func ParseEvent(s string) (Event, error) {
	for _, event := range Events {
		if event.String() == s {
			return event, nil
		}
	}
	return TouchBegan, fmt.Errorf("%w: %q", ErrUnknownEvent, s)
}

// TouchID identifies an active touch (finger, mouse button, virtual key)
type TouchID int

// Next returns the state reached from state when event happens.
// Every (state, event) pair is defined; pairs not listed below leave
// the state unchanged.
func Next(state State, event Event) State {
	switch event {
	case TouchBegan:
		if state == Idle {
			return ReadyToShame
		}
	case TouchEnded:
		// lifting the finger cancels everything, including a ringing bell
		return Idle
	case Shake:
		if state == ReadyToShame {
			return Shame
		}
	case AudioFinished, AudioInterrupted:
		if state == Shame {
			return ReadyToShame
		}
	}
	return state
}

// Effect is a command the caller must apply after a transition
type Effect int

const (
	StartPlayback Effect = iota
	StopPlayback
	Render
)

func (e Effect) String() string {
	switch e {
	case StartPlayback:
		return "start-playback"
	case StopPlayback:
		return "stop-playback"
	case Render:
		return "render"
	default:
		return fmt.Sprintf("effect(%d)", int(e))
	}
}

// Transition describes one step of the state machine
type Transition struct {
	Effects []Effect
	Event   Event
	From    State
	To      State
}

// Changed reports whether the transition moved to a different state
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Reduce applies event to state and returns the new state together with
// the effects the caller has to perform, in order. Self-transitions
// produce no effects.
func Reduce(state State, event Event) (State, []Effect) {
	next := Next(state, event)
	if next == state {
		return state, nil
	}

	var effects []Effect
	if next == Shame {
		effects = append(effects, StartPlayback)
	}
	if state == Shame {
		effects = append(effects, StopPlayback)
	}
	return next, append(effects, Render)
}

// Step is Reduce packaged as a Transition
func Step(state State, event Event) Transition {
	next, effects := Reduce(state, event)
	return Transition{
		Effects: effects,
		Event:   event,
		From:    state,
		To:      next,
	}
}

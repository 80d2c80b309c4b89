package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_TransitionTable(t *testing.T) {
	tests := []struct {
		state    State
		event    Event
		expected State
	}{
		{Idle, TouchBegan, ReadyToShame},
		{ReadyToShame, TouchBegan, ReadyToShame},
		{Shame, TouchBegan, Shame},

		{Idle, TouchEnded, Idle},
		{ReadyToShame, TouchEnded, Idle},
		{Shame, TouchEnded, Idle},

		{Idle, Shake, Idle},
		{ReadyToShame, Shake, Shame},
		{Shame, Shake, Shame},

		{Idle, AudioFinished, Idle},
		{ReadyToShame, AudioFinished, ReadyToShame},
		{Shame, AudioFinished, ReadyToShame},

		{Idle, AudioInterrupted, Idle},
		{ReadyToShame, AudioInterrupted, ReadyToShame},
		{Shame, AudioInterrupted, ReadyToShame},
	}

	for _, tt := range tests {
		t.Run(tt.state.String()+"/"+tt.event.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Next(tt.state, tt.event))
		})
	}
}

func TestNext_TouchEndedAlwaysIdle(t *testing.T) {
	for _, state := range States {
		assert.Equal(t, Idle, Next(state, TouchEnded), "from %s", state)
	}
}

func TestNext_UnknownEventIsSelfTransition(t *testing.T) {
	for _, state := range States {
		assert.Equal(t, state, Next(state, Event(42)))
	}
}

func TestNext_Idempotent(t *testing.T) {
	for _, state := range States {
		for _, event := range Events {
			once := Next(state, event)
			twice := Next(once, event)
			assert.Equal(t, once, twice, "%s then %s twice", state, event)
		}
	}
}

func TestReduce_Effects(t *testing.T) {
	tests := []struct {
		name            string
		state           State
		event           Event
		expectedState   State
		expectedEffects []Effect
	}{
		{"arm", Idle, TouchBegan, ReadyToShame, []Effect{Render}},
		{"ring", ReadyToShame, Shake, Shame, []Effect{StartPlayback, Render}},
		{"finish", Shame, AudioFinished, ReadyToShame, []Effect{StopPlayback, Render}},
		{"interrupt", Shame, AudioInterrupted, ReadyToShame, []Effect{StopPlayback, Render}},
		{"lift while ringing", Shame, TouchEnded, Idle, []Effect{StopPlayback, Render}},
		{"lift while armed", ReadyToShame, TouchEnded, Idle, []Effect{Render}},
		{"shake while idle", Idle, Shake, Idle, nil},
		{"shake while ringing", Shame, Shake, Shame, nil},
		{"finish while idle", Idle, AudioFinished, Idle, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, effects := Reduce(tt.state, tt.event)
			assert.Equal(t, tt.expectedState, next)
			assert.Equal(t, tt.expectedEffects, effects)
		})
	}
}

func TestReduce_AgreesWithNext(t *testing.T) {
	for _, state := range States {
		for _, event := range Events {
			next, effects := Reduce(state, event)
			assert.Equal(t, Next(state, event), next)
			if next == state {
				assert.Empty(t, effects)
			} else {
				require.NotEmpty(t, effects)
				assert.Equal(t, Render, effects[len(effects)-1])
			}
		}
	}
}

func TestStep(t *testing.T) {
	tr := Step(ReadyToShame, Shake)

	assert.Equal(t, ReadyToShame, tr.From)
	assert.Equal(t, Shame, tr.To)
	assert.Equal(t, Shake, tr.Event)
	assert.True(t, tr.Changed())
	assert.Equal(t, []Effect{StartPlayback, Render}, tr.Effects)

	assert.False(t, Step(Idle, Shake).Changed())
}

func TestParseEvent(t *testing.T) {
	for _, event := range Events {
		parsed, err := ParseEvent(event.String())
		require.NoError(t, err)
		assert.Equal(t, event, parsed)
	}

	_, err := ParseEvent("wobble")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEvent))
}

func TestParseState(t *testing.T) {
	state, err := ParseState("ready-to-shame")
	require.NoError(t, err)
	assert.Equal(t, ReadyToShame, state)

	_, err = ParseState("ringing")
	assert.Error(t, err)

	for _, state := range States {
		parsed, err := ParseState(string(state))
		require.NoError(t, err)
		assert.Equal(t, state, parsed)
	}
}

package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFader_FadesWithSmoothstep(t *testing.T) {
	f := NewFader(0)
	f.FadeTo(1, 10)

	assert.Equal(t, 0.0, f.Value())
	assert.True(t, f.IsFading())

	for i := 0; i < 5; i++ {
		f.Update()
	}
	assert.InDelta(t, 0.5, f.Value(), 1e-9, "smoothstep is symmetric")

	f.Update()
	assert.Greater(t, f.Value(), 0.6)

	for i := 0; i < 10; i++ {
		f.Update()
	}
	assert.Equal(t, 1.0, f.Value())
	assert.False(t, f.IsFading())
}

func TestFader_RetargetStartsFromCurrentValue(t *testing.T) {
	f := NewFader(0)
	f.FadeTo(1, 10)
	for i := 0; i < 5; i++ {
		f.Update()
	}

	f.FadeTo(0, 10)

	assert.InDelta(t, 0.5, f.Value(), 1e-9)
	assert.Equal(t, 0.0, f.Target())
}

func TestFader_SameTargetKeepsGoing(t *testing.T) {
	f := NewFader(0)
	f.FadeTo(1, 10)
	for i := 0; i < 5; i++ {
		f.Update()
	}

	f.FadeTo(1, 10)

	assert.InDelta(t, 0.5, f.Value(), 1e-9)
}

func TestFader_ZeroDurationAndSettle(t *testing.T) {
	f := NewFader(0.3)
	f.FadeTo(1, 0)
	assert.Equal(t, 1.0, f.Value())

	f.FadeTo(0, 30)
	f.Settle()
	assert.Equal(t, 0.0, f.Value())
	assert.False(t, f.IsFading())
}

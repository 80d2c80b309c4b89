package screen

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	alphaFadeTicks Ticks = 12
	flipTicks      Ticks = 20
	labelFadeTicks Ticks = 18
)

var (
	backgroundColor = color.Black
	bellColor       = color.NRGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}
	labelColor      = color.White
)

// Canvas implements ports.BellView for the Ebitengine screen. It animates
// toward the values it receives; call Update once per tick.
type Canvas struct {
	discAlpha  Fader
	face       *text.GoTextFaceSource
	labelAlpha Fader
	rotation   Fader // radians, Pi when flipped
	text       string
}

// NewCanvas creates a canvas with the Go Regular face loaded
func NewCanvas() (*Canvas, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Canvas{
		discAlpha:  NewFader(0),
		face:       source,
		labelAlpha: NewFader(0),
		rotation:   NewFader(0),
	}, nil
}

// SetImageAlpha fades the bell disc to alpha
func (c *Canvas) SetImageAlpha(alpha float64) {
	c.discAlpha.FadeTo(alpha, alphaFadeTicks)
}

// SetInfoText sets the label and fades it in or out
func (c *Canvas) SetInfoText(text string, visible bool) {
	c.text = text
	target := 0.0
	if visible {
		target = 1
	}
	c.labelAlpha.FadeTo(target, labelFadeTicks)
}

// SetInfoTransform turns the label half a revolution when flipped
func (c *Canvas) SetInfoTransform(flipped bool) {
	target := 0.0
	if flipped {
		target = math.Pi
	}
	c.rotation.FadeTo(target, flipTicks)
}

// Settle skips running animations, used for the first frame
func (c *Canvas) Settle() {
	c.discAlpha.Settle()
	c.labelAlpha.Settle()
	c.rotation.Settle()
}

// Update advances the animations by one tick
func (c *Canvas) Update() {
	c.discAlpha.Update()
	c.labelAlpha.Update()
	c.rotation.Update()
}

// DiscAlpha returns the current disc opacity
func (c *Canvas) DiscAlpha() float64 {
	return c.discAlpha.Value()
}

// Label returns the current label text, opacity and rotation
func (c *Canvas) Label() (string, float64, float64) {
	return c.text, c.labelAlpha.Value(), c.rotation.Value()
}

// Draw renders the bell and its label, scaled to the screen size
func (c *Canvas) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	bounds := screen.Bounds()
	size := ebimath.V(float64(bounds.Dx()), float64(bounds.Dy()))
	center := ebimath.V(size.X/2, size.Y*0.45)
	radius := math.Min(size.X, size.Y) * 0.35

	disc := bellColor
	disc.A = uint8(math.Round(255 * clamp01(c.discAlpha.Value())))
	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(radius), disc, true)

	alpha := clamp01(c.labelAlpha.Value())
	if alpha == 0 || c.text == "" {
		return
	}

	face := &text.GoTextFace{
		Source: c.face,
		Size:   math.Max(14, size.X/16),
	}
	width, height := text.Measure(c.text, face, 0)
	anchor := ebimath.V(size.X/2, center.Y+radius+(size.Y-center.Y-radius)/2)

	op := &text.DrawOptions{}
	op.GeoM.Translate(-width/2, -height/2)
	op.GeoM.Rotate(c.rotation.Value())
	op.GeoM.Translate(anchor.X, anchor.Y)
	op.ColorScale.ScaleWithColor(labelColor)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, c.text, face, op)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

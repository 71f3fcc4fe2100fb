package internal

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"graphics.gd/variant/Float"
)

// Spring constants for the busy/idle morph, in mass/tension/friction
// form. The spring is stepped at a fixed rate under an accumulator so
// the motion is independent of the display refresh cadence.
const (
	springMass     = 2.0
	springTension  = 170.0
	springFriction = 26.0
	springRate     = 60
)

// Morph converts the processing signal into a continuously evolving
// blend factor. The target snaps between 0 (idle, sphere) and 1 (busy,
// waves) but the live value follows a damped spring, so a flip
// mid-flight continues from the current position and velocity instead
// of jumping. The value is deliberately not clamped, physical overshoot
// past either endpoint is part of the look.
type Morph struct {
	spring harmonica.Spring

	busy func() bool // processing signal port, polled once per tick

	position float64
	velocity float64
	target   float64
	pending  float64 // time not yet consumed by a fixed substep
}

// NewMorph returns a morph controller polling the given processing
// signal. A nil signal leaves the morph resting at the sphere pose.
func NewMorph(busy func() bool) *Morph {
	var (
		frequency = math.Sqrt(springTension / springMass)
		damping   = springFriction / (2 * math.Sqrt(springTension*springMass))
	)
	return &Morph{
		spring: harmonica.NewSpring(harmonica.FPS(springRate), frequency, damping),
		busy:   busy,
	}
}

// Tick polls the signal once, retargets the spring and advances it by
// dt, returning the live blend factor.
func (m *Morph) Tick(dt Float.X) Float.X {
	if m.busy != nil {
		if m.busy() {
			m.target = 1
		} else {
			m.target = 0
		}
	}
	const step = 1.0 / springRate
	m.pending += float64(dt)
	for m.pending >= step {
		m.position, m.velocity = m.spring.Update(m.position, m.velocity, m.target)
		m.pending -= step
	}
	return Float.X(m.position)
}

// Blend reports the live blend factor without advancing the spring.
func (m *Morph) Blend() Float.X { return Float.X(m.position) }

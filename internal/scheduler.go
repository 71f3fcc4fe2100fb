package internal

import "graphics.gd/variant/Float"

// FrameClock owns the two per-frame globals of the orb: the monotonic
// elapsed time and the live blend factor. The hosting node forwards its
// Process deltas into Tick and the clock pushes both globals to the
// registered sink, which keeps the animation core decoupled from the
// engine's own loop hook.
type FrameClock struct {
	morph *Morph

	elapsed Float.X
	onTick  func(time, blend Float.X)
	running bool
}

func NewFrameClock(morph *Morph) *FrameClock {
	return &FrameClock{morph: morph}
}

// Start registers the per-tick sink. Elapsed time keeps counting from
// wherever it was, it never resets within a clock's lifetime.
func (clock *FrameClock) Start(onTick func(time, blend Float.X)) {
	clock.onTick = onTick
	clock.running = true
}

// Stop halts the clock. No sink invocation and no global write happens
// after Stop returns, ticks are synchronous so there is nothing
// in-flight to wait for.
func (clock *FrameClock) Stop() {
	clock.running = false
	clock.onTick = nil
}

// Elapsed reports the time accumulated so far.
func (clock *FrameClock) Elapsed() Float.X { return clock.elapsed }

// Tick advances the clock and the morph spring by dt and forwards both
// globals to the sink. Ticks after Stop are ignored.
func (clock *FrameClock) Tick(dt Float.X) {
	if !clock.running {
		return
	}
	clock.elapsed += dt
	blend := clock.morph.Tick(dt)
	if clock.onTick != nil {
		clock.onTick(clock.elapsed, blend)
	}
}

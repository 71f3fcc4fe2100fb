package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"graphics.gd/variant/Float"
)

const tickStep = Float.X(1.0 / 60.0)

func TestMorphConvergesAndSettles(t *testing.T) {
	busy := true
	morph := NewMorph(func() bool { return busy })
	for range 300 {
		morph.Tick(tickStep)
	}
	require.InDelta(t, 1, float64(morph.Blend()), 0.01)

	busy = false
	for range 300 {
		morph.Tick(tickStep)
	}
	require.InDelta(t, 0, float64(morph.Blend()), 0.01)
	for range 600 {
		morph.Tick(tickStep)
		require.InDelta(t, 0, float64(morph.Blend()), 0.01)
	}
}

func TestMorphOvershootIsNotClamped(t *testing.T) {
	busy := true
	morph := NewMorph(func() bool { return busy })
	for range 300 {
		morph.Tick(tickStep)
	}
	busy = false
	lowest := math.Inf(1)
	for range 300 {
		lowest = math.Min(lowest, float64(morph.Tick(tickStep)))
	}
	require.Less(t, lowest, 0.0)
}

func TestMorphRapidFlipIsContinuous(t *testing.T) {
	busy := false
	morph := NewMorph(func() bool { return busy })
	last := morph.Blend()
	step := func(ticks int) {
		for range ticks {
			next := morph.Tick(tickStep)
			require.Less(t, math.Abs(float64(next-last)), 0.1)
			last = next
		}
	}
	busy = true
	step(10)
	busy = false
	step(5)
	busy = true
	step(10)
	busy = false
	step(300)
	require.InDelta(t, 0, float64(morph.Blend()), 0.01)
}

func TestMorphNilSignalRests(t *testing.T) {
	morph := NewMorph(nil)
	for range 120 {
		morph.Tick(tickStep)
	}
	require.Zero(t, float64(morph.Blend()))
}

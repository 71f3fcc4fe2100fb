package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"graphics.gd/variant/Color"
	"graphics.gd/variant/Vector3"
)

func TestSphereLayoutRadius(t *testing.T) {
	for _, count := range []int{1, 10, 500, FieldPoints} {
		points, err := SphereLayout(count, FieldScale)
		require.NoError(t, err)
		require.Len(t, points, count)
		for _, point := range points {
			require.InDelta(t, float64(FieldScale), float64(Vector3.Length(point)), 1e-4)
		}
	}
}

func TestSphereLayoutDeterministic(t *testing.T) {
	first, err := SphereLayout(FieldPoints, FieldScale)
	require.NoError(t, err)
	second, err := SphereLayout(FieldPoints, FieldScale)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSphereLayoutRejectsNonPositiveCount(t *testing.T) {
	for _, count := range []int{0, -5} {
		_, err := SphereLayout(count, FieldScale)
		require.ErrorIs(t, err, ErrNoPoints)
	}
}

func TestWaveLayoutLines(t *testing.T) {
	points, err := WaveLayout(FieldPoints, FieldLines, FieldLineSpacing, FieldWidth)
	require.NoError(t, err)
	require.Len(t, points, FieldPoints)
	perLine := FieldPoints / FieldLines
	for line := 0; line < FieldLines; line++ {
		wantY := float64(line)*float64(FieldLineSpacing) - float64(FieldLines)*float64(FieldLineSpacing)/2
		for j := 0; j < perLine; j++ {
			point := points[line*perLine+j]
			require.InDelta(t, wantY, float64(point.Y), 1e-6)
			require.Zero(t, float64(point.Z))
			if j > 0 {
				require.Greater(t, float64(point.X), float64(points[line*perLine+j-1].X))
			}
		}
	}
}

func TestWaveLayoutDeterministic(t *testing.T) {
	first, err := WaveLayout(FieldPoints, FieldLines, FieldLineSpacing, FieldWidth)
	require.NoError(t, err)
	second, err := WaveLayout(FieldPoints, FieldLines, FieldLineSpacing, FieldWidth)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestWaveLayoutRejectsBadShape(t *testing.T) {
	_, err := WaveLayout(0, FieldLines, FieldLineSpacing, FieldWidth)
	require.ErrorIs(t, err, ErrNoPoints)
	_, err = WaveLayout(FieldPoints, 0, FieldLineSpacing, FieldWidth)
	require.Error(t, err)
}

func TestAttributeChannelKeepsIndexing(t *testing.T) {
	wave, err := WaveLayout(FieldPoints, FieldLines, FieldLineSpacing, FieldWidth)
	require.NoError(t, err)
	channel := AttributeChannel(wave)
	require.Len(t, channel, FieldPoints*3)
	for i, point := range wave {
		require.Equal(t, float32(point.X), channel[i*3])
		require.Equal(t, float32(point.Y), channel[i*3+1])
		require.Equal(t, float32(point.Z), channel[i*3+2])
	}
}

func TestWaveLayoutLeavesUnitBall(t *testing.T) {
	// The wave pose has points well outside unit length, so any channel
	// carrying it must preserve magnitude, not just direction.
	wave, err := WaveLayout(FieldPoints, FieldLines, FieldLineSpacing, FieldWidth)
	require.NoError(t, err)
	var longest float64
	for _, point := range wave {
		longest = max(longest, float64(Vector3.Length(point)))
	}
	require.Greater(t, longest, 1.0)
}

func TestFieldColorsStayInPalette(t *testing.T) {
	colors, err := FieldColors(FieldPoints, FieldPalette)
	require.NoError(t, err)
	require.Len(t, colors, FieldPoints)
	for _, color := range colors {
		require.Contains(t, FieldPalette, color)
	}
}

func TestFieldColorsRejectsBadInput(t *testing.T) {
	_, err := FieldColors(0, FieldPalette)
	require.ErrorIs(t, err, ErrNoPoints)
	_, err = FieldColors(FieldPoints, []Color.RGBA{})
	require.Error(t, err)
}

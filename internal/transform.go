package internal

import (
	"errors"
	"math"

	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector3"
)

// Motion constants, mirrored by shader/points.gdshader where the
// per-point work actually runs.
const (
	RotationSpeed   = Float.X(0.1)
	RippleFrequency = Float.X(2.0)
	RippleAmplitude = Float.X(0.3)
)

// RotationAxis is the fixed vertical axis the whole formation spins
// around.
var RotationAxis = Vector3.XYZ{Y: 1}

var ErrDegenerateAxis = errors.New("rotation axis has zero length")

// Ripple returns the vertical displacement travelling along a wave line
// at the given elapsed time.
func Ripple(wave Vector3.XYZ, time Float.X) Float.X {
	return Float.X(math.Sin(float64(wave.X*RippleFrequency+time))) * RippleAmplitude
}

// Rotated rotates v about the given axis by angle radians in axis-angle
// (Rodrigues) form. The axis is re-normalised before use, a zero-length
// or malformed axis is refused so that NaNs can never reach a vertex
// buffer.
func Rotated(v, axis Vector3.XYZ, angle Float.X) (Vector3.XYZ, error) {
	length := Vector3.LengthSquared(axis)
	if length == 0 || math.IsNaN(float64(length)) {
		return Vector3.XYZ{}, ErrDegenerateAxis
	}
	var (
		a  = Vector3.Normalized(axis)
		s  = Float.X(math.Sin(float64(angle)))
		c  = Float.X(math.Cos(float64(angle)))
		oc = 1 - c
	)
	return Vector3.XYZ{
		X: (oc*a.X*a.X+c)*v.X + (oc*a.X*a.Y-a.Z*s)*v.Y + (oc*a.Z*a.X+a.Y*s)*v.Z,
		Y: (oc*a.X*a.Y+a.Z*s)*v.X + (oc*a.Y*a.Y+c)*v.Y + (oc*a.Y*a.Z-a.X*s)*v.Z,
		Z: (oc*a.Z*a.X-a.Y*s)*v.X + (oc*a.Y*a.Z+a.X*s)*v.Y + (oc*a.Z*a.Z+c)*v.Z,
	}, nil
}

// Transformed applies the full per-point pipeline on the CPU: ripple
// the wave pose, blend the two poses, rotate about [RotationAxis]. This
// is the testable reference for the vertex stage, each point is
// independent of every other point.
func Transformed(sphere, wave Vector3.XYZ, time, blend Float.X) (Vector3.XYZ, error) {
	wave.Y += Ripple(wave, time)
	morphed := Vector3.Lerp(sphere, wave, blend)
	return Rotated(morphed, RotationAxis, time*RotationSpeed)
}

package internal

import (
	"errors"
	"math"
	"math/rand"

	"graphics.gd/variant/Color"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector3"
)

// Shape of the presence orb. These are fixed at build time, the
// reference behaviour has no runtime tuning surface.
const (
	FieldPoints      = 2000
	FieldScale       = Float.X(1.5)
	FieldLines       = 5
	FieldLineSpacing = Float.X(0.3)
	FieldWidth       = Float.X(5)
)

// FieldPalette lists the colors a point may take on. Assignment is the
// only random step in the field, see [FieldColors].
var FieldPalette = []Color.RGBA{
	{0.55, 0.36, 0.96, 1},
	{0.38, 0.56, 0.98, 1},
	{0.65, 0.78, 1.00, 1},
	{0.93, 0.93, 1.00, 1},
}

var ErrNoPoints = errors.New("point field needs a positive point count")

// SphereLayout distributes count points evenly over the surface of a
// sphere of radius scale using the golden-spiral equal-area method.
// The result depends only on count and scale.
func SphereLayout(count int, scale Float.X) ([]Vector3.XYZ, error) {
	if count <= 0 {
		return nil, ErrNoPoints
	}
	var (
		points = make([]Vector3.XYZ, count)
		offset = 2.0 / float64(count)
		golden = math.Pi * (3.0 - math.Sqrt(5.0))
	)
	for i := range points {
		var (
			y   = float64(i)*offset - 1 + offset/2
			r   = math.Sqrt(1 - y*y)
			phi = float64(i) * golden
		)
		points[i] = Vector3.MulX(Vector3.New(math.Cos(phi)*r, y, math.Sin(phi)*r), scale)
	}
	return points, nil
}

// WaveLayout arranges count points into the given number of horizontal
// lines, each spanning width centered on the origin, with spacing
// between neighbouring lines. The result depends only on the arguments.
func WaveLayout(count, lines int, spacing, width Float.X) ([]Vector3.XYZ, error) {
	if count <= 0 {
		return nil, ErrNoPoints
	}
	if lines <= 0 {
		return nil, errors.New("wave layout needs a positive line count")
	}
	var (
		points  = make([]Vector3.XYZ, count)
		perLine = float64(count) / float64(lines)
	)
	for i := range points {
		var (
			line  = math.Floor(float64(i) / perLine)
			along = float64(i) - line*perLine
			x     = along/perLine*float64(width) - float64(width)/2
			y     = line*float64(spacing) - float64(lines)*float64(spacing)/2
		)
		points[i] = Vector3.New(x, y, 0)
	}
	return points, nil
}

// AttributeChannel flattens points into the raw three-floats-per-vertex
// layout of a custom float mesh channel. Unlike the normal channel a
// float channel carries arbitrary magnitudes, so poses that leave the
// unit ball survive the upload. Index i of the input stays triple i of
// the output.
func AttributeChannel(points []Vector3.XYZ) []float32 {
	channel := make([]float32, 0, len(points)*3)
	for _, point := range points {
		channel = append(channel, float32(point.X), float32(point.Y), float32(point.Z))
	}
	return channel
}

// FieldColors picks one palette color for every point, uniformly at
// random. Palette membership is the only guarantee, repeated calls
// produce different assignments.
func FieldColors(count int, palette []Color.RGBA) ([]Color.RGBA, error) {
	if count <= 0 {
		return nil, ErrNoPoints
	}
	if len(palette) == 0 {
		return nil, errors.New("point field needs a non-empty palette")
	}
	colors := make([]Color.RGBA, count)
	for i := range colors {
		colors[i] = palette[rand.Intn(len(palette))]
	}
	return colors, nil
}

package geometry

import "math"

// Point represents a 3D point in homogeneous coordinates.
// W is carried as the fourth matrix coordinate and is never normalized.
type Point struct {
	X, Y, Z, W float64
}

// NewPoint creates a new point with W set to 1
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z, W: 1}
}

// Add returns the component-wise sum of two points (W is kept from p)
func (p Point) Add(other Point) Point {
	return Point{
		X: p.X + other.X,
		Y: p.Y + other.Y,
		Z: p.Z + other.Z,
		W: p.W,
	}
}

// Sub returns the difference between two points (W is kept from p)
func (p Point) Sub(other Point) Point {
	return Point{
		X: p.X - other.X,
		Y: p.Y - other.Y,
		Z: p.Z - other.Z,
		W: p.W,
	}
}

// Length returns the magnitude of the spatial part
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Axis returns the coordinate on the given axis
func (p Point) Axis(axis Axis) float64 {
	switch axis {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// Clamp limits every spatial coordinate to [-limit, limit]
func (p Point) Clamp(limit float64) Point {
	return Point{
		X: clamp(p.X, limit),
		Y: clamp(p.Y, limit),
		Z: clamp(p.Z, limit),
		W: p.W,
	}
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// Min returns a point with the minimum components of two points
func (p Point) Min(other Point) Point {
	return Point{
		X: math.Min(p.X, other.X),
		Y: math.Min(p.Y, other.Y),
		Z: math.Min(p.Z, other.Z),
		W: p.W,
	}
}

// Max returns a point with the maximum components of two points
func (p Point) Max(other Point) Point {
	return Point{
		X: math.Max(p.X, other.X),
		Y: math.Max(p.Y, other.Y),
		Z: math.Max(p.Z, other.Z),
		W: p.W,
	}
}

// Centroid returns the arithmetic mean of the given points.
// Repeated points are counted once per occurrence.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return NewPoint(0, 0, 0)
	}

	var x, y, z float64
	for _, p := range points {
		x += p.X
		y += p.Y
		z += p.Z
	}

	n := float64(len(points))
	return NewPoint(x/n, y/n, z/n)
}

// Axis names one of the three spatial axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

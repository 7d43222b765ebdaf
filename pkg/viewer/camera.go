package viewer

import (
	"math"

	"github.com/philipparndt/torusview/pkg/torus"
)

const (
	// degrees of rotation per dragged pixel
	dragSensitivity = 0.5
	minZoom         = 0.1
	maxZoom         = 10.0
)

// Camera tracks the interactive orbit and zoom applied to a mesh before it
// is projected
type Camera struct {
	RotationX float64 // Rotation around X axis in degrees (vertical drag)
	RotationY float64 // Rotation around Y axis in degrees (horizontal drag)
	Zoom      float64
}

// NewCamera creates a camera with no rotation and unit zoom
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// Rotate orbits the camera by a drag delta in pixels
func (c *Camera) Rotate(dx, dy float64) {
	c.RotationY = wrapDegrees(c.RotationY + dx*dragSensitivity)
	c.RotationX = wrapDegrees(c.RotationX + dy*dragSensitivity)
}

// ZoomBy changes the zoom relative to the current value
func (c *Camera) ZoomBy(delta float64) {
	c.Zoom = math.Max(minZoom, math.Min(maxZoom, c.Zoom*(1+delta)))
}

// Reset returns the camera to its initial state
func (c *Camera) Reset() {
	*c = Camera{Zoom: 1}
}

// Apply rotates and scales a copy of the mesh. A zero rotation or a unit
// zoom leaves the mesh untouched.
func (c *Camera) Apply(m *torus.Mesh) (*torus.Mesh, error) {
	var err error
	if c.RotationX != 0 || c.RotationY != 0 {
		if m, err = torus.Rotate(m, c.RotationX, c.RotationY, 0); err != nil {
			return nil, err
		}
	}
	if c.Zoom != 1 && c.Zoom > 0 {
		if m, err = torus.Scale(m, c.Zoom, c.Zoom, c.Zoom); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

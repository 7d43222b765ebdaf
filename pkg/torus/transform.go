package torus

import (
	"fmt"
	"math"

	"github.com/philipparndt/torusview/pkg/geometry"
)

// minPerspectiveDepth bounds the perspective divide away from zero
const minPerspectiveDepth = 0.1

// Rotate rotates every point by rx, ry, rz degrees (X, then Y, then Z)
func Rotate(m *Mesh, rx, ry, rz float64) (*Mesh, error) {
	return applyMatrix(m, "rotate", geometry.RotationMatrix(rx, ry, rz))
}

// Scale scales every point by the given factors
func Scale(m *Mesh, sx, sy, sz float64) (*Mesh, error) {
	return applyMatrix(m, "scale", geometry.ScalingMatrix(sx, sy, sz))
}

// Translate moves every point by the given offsets
func Translate(m *Mesh, dx, dy, dz float64) (*Mesh, error) {
	return applyMatrix(m, "translate", geometry.TranslationMatrix(dx, dy, dz))
}

// Axonometric orients the mesh for an axonometric view. It is the same
// operation as Rotate.
func Axonometric(m *Mesh, rx, ry, rz float64) (*Mesh, error) {
	return applyMatrix(m, "axonometric", geometry.RotationMatrix(rx, ry, rz))
}

// Oblique applies the oblique shear with length l and angle alpha (degrees)
func Oblique(m *Mesh, l, alpha float64) (*Mesh, error) {
	return applyMatrix(m, "oblique", geometry.ObliqueMatrix(l, alpha))
}

// ViewTransform moves the mesh into camera space for a viewer at distance
// rho, azimuth phi and elevation theta (degrees). With legacy set, the
// matrix of older renders is used and the angles are read as radians.
func ViewTransform(m *Mesh, rho, phi, theta float64, legacy bool) (*Mesh, error) {
	matrix := geometry.ViewMatrix(rho, phi, theta)
	if legacy {
		matrix = geometry.LegacyViewMatrix(rho, phi, theta)
	}
	return applyMatrix(m, "view transform", matrix)
}

// Perspective projects every point onto the plane z = d as seen from the
// origin. |z| is clamped to at least 0.1 before dividing.
func Perspective(m *Mesh, d float64) *Mesh {
	return m.mapPoints(func(p geometry.Point) geometry.Point {
		z := math.Abs(p.Z)
		if z <= minPerspectiveDepth {
			z = minPerspectiveDepth
		}
		return geometry.NewPoint(p.X*d/z, p.Y*d/z, d)
	})
}

func applyMatrix(m *Mesh, name string, matrix geometry.Matrix) (*Mesh, error) {
	var err error
	out := m.mapPoints(func(p geometry.Point) geometry.Point {
		if err != nil {
			return p
		}
		var q geometry.Point
		q, err = geometry.MultiplyRowVector(p, matrix)
		return q
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

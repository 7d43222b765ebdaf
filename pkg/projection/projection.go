// Package projection defines the supported view projections and prepares a
// mesh for drawing under one of them.
package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/torusview/pkg/torus"
)

// ErrUnknownProjection is returned for a projection outside the closed set
var ErrUnknownProjection = errors.New("unknown projection")

// Projection is one of Axonometric, Perspective, Oblique or Orthogonal
type Projection interface {
	Name() string
	isProjection()
}

// Axonometric rotates the mesh before a parallel view onto XOY
type Axonometric struct {
	RX, RY, RZ float64
}

// Perspective divides by depth as seen from the origin onto the plane z = D
type Perspective struct {
	D float64
}

// Oblique shears depth into the view plane with length L at angle Alpha (degrees)
type Oblique struct {
	L, Alpha float64
}

// Orthogonal draws front, side and top views without transforming the mesh
type Orthogonal struct{}

func (Axonometric) Name() string { return "axonometric" }
func (Perspective) Name() string { return "perspective" }
func (Oblique) Name() string     { return "oblique" }
func (Orthogonal) Name() string  { return "orthogonal" }

func (Axonometric) isProjection() {}
func (Perspective) isProjection() {}
func (Oblique) isProjection()     {}
func (Orthogonal) isProjection()  {}

// Names lists the projection names accepted by Parse
var Names = []string{"axonometric", "perspective", "oblique", "orthogonal"}

// Parse returns a zero-parameter projection for the given name
func Parse(name string) (Projection, error) {
	switch name {
	case "axonometric":
		return Axonometric{}, nil
	case "perspective":
		return Perspective{}, nil
	case "oblique":
		return Oblique{}, nil
	case "orthogonal":
		return Orthogonal{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProjection, name)
}

// View is the optional camera orientation applied after the projection
type View struct {
	Rho, Phi, Theta float64
	// Legacy selects the matrix of older renders (radian angles, theta-insensitive entry)
	Legacy bool
}

// ObliqueSortOrder returns the facet order used before an oblique shear.
// Every quadrant of alpha currently resolves to Z descending.
func ObliqueSortOrder(alpha float64) torus.SortOrder {
	a := math.Mod(alpha, 360)
	switch {
	case a >= 0 && a <= 90:
		return torus.ZDescending
	case a > 90 && a <= 180:
		return torus.ZDescending
	case a > 180 && a <= 270:
		return torus.ZDescending
	default:
		return torus.ZDescending
	}
}

// Prepare returns a new mesh transformed for the projection, with facets in
// draw order where the order must be fixed before depth is lost. The input
// mesh is not modified. When view is non-nil it is applied last.
func Prepare(m *torus.Mesh, p Projection, view *View) (*torus.Mesh, error) {
	out, err := prepare(m, p)
	if err != nil {
		return nil, err
	}

	if view != nil {
		out, err = torus.ViewTransform(out, view.Rho, view.Phi, view.Theta, view.Legacy)
		if err != nil {
			return nil, fmt.Errorf("prepare %s: %w", p.Name(), err)
		}
	}

	return out, nil
}

func prepare(m *torus.Mesh, p Projection) (*torus.Mesh, error) {
	switch p := p.(type) {
	case Axonometric:
		return torus.Axonometric(m, p.RX, p.RY, p.RZ)
	case Orthogonal:
		return m.Copy(), nil
	case Oblique:
		sorted, err := m.Sorted(ObliqueSortOrder(p.Alpha))
		if err != nil {
			return nil, err
		}
		return torus.Oblique(sorted, p.L, p.Alpha)
	case Perspective:
		sorted, err := m.Sorted(torus.ZAscending)
		if err != nil {
			return nil, err
		}
		return torus.Perspective(sorted, p.D), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownProjection, p)
}

package render

import (
	"errors"
	"fmt"

	"github.com/philipparndt/torusview/pkg/geometry"
)

// ErrUnknownPlane is returned for a plane type outside XOY, XOZ and ZOY
var ErrUnknownPlane = errors.New("unknown plane type")

// PlaneType names the principal plane a view is projected onto
type PlaneType int

const (
	XOY PlaneType = iota // front
	XOZ                  // top
	ZOY                  // side
)

func (p PlaneType) String() string {
	switch p {
	case XOY:
		return "XOY"
	case XOZ:
		return "XOZ"
	case ZOY:
		return "ZOY"
	}
	return fmt.Sprintf("PlaneType(%d)", int(p))
}

// Point2 is a screen-space point
type Point2 struct {
	X, Y float64
}

// Project maps 3D points onto the plane around center. Screen y grows
// downwards, so the vertical axis is flipped. The top view takes its depth
// offset from center.Y and the side view from center.X.
func Project(points []geometry.Point, center geometry.Point, plane PlaneType, scale float64) ([]Point2, error) {
	out := make([]Point2, len(points))
	for i, p := range points {
		switch plane {
		case XOY:
			out[i] = Point2{X: center.X + p.X*scale, Y: center.Y + p.Y*-scale}
		case XOZ:
			out[i] = Point2{X: center.X + p.X*scale, Y: center.Y + p.Z*-scale}
		case ZOY:
			out[i] = Point2{X: center.X + p.Z*scale, Y: center.Y + p.Y*-scale}
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownPlane, int(plane))
		}
	}
	return out, nil
}

package render

import (
	"fmt"
	"image/color"

	"github.com/philipparndt/torusview/pkg/geometry"
	"github.com/philipparndt/torusview/pkg/projection"
	"github.com/philipparndt/torusview/pkg/torus"
)

const (
	// MaxCoordinate bounds every coordinate before projection
	MaxCoordinate = 5000.0
	// DefaultScale is the scale of single-view projections
	DefaultScale = 1.0
	// DefaultWidth and DefaultHeight are the canvas size
	DefaultWidth  = 850
	DefaultHeight = 600
)

// StrokeColor outlines every facet and the axis overlay
var StrokeColor = color.RGBA{A: 255}

// Polygon is a projected facet ready to paint
type Polygon struct {
	Points []Point2
	Fill   color.RGBA
	Stroke color.RGBA
}

// Segment is a line of the axis overlay
type Segment struct {
	From, To Point2
}

// Label is a text caption of the axis overlay
type Label struct {
	Text string
	At   Point2
}

// Frame is a complete drawing: the overlay followed by polygons in paint
// order. Later polygons paint over earlier ones.
type Frame struct {
	Width    int
	Height   int
	Axes     []Segment
	Labels   []Label
	Polygons []Polygon
}

// Options carries the caller's drawing parameters
type Options struct {
	Width  int
	Height int
	Color  color.RGBA
	Light  Light
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// subView is one projection of the facets onto a plane
type subView struct {
	order  *torus.SortOrder
	center geometry.Point
	plane  PlaneType
	scale  float64
}

func orderPtr(o torus.SortOrder) *torus.SortOrder {
	return &o
}

// DrawView projects a prepared mesh into a frame. Coordinates are clamped
// to MaxCoordinate first. Facets are ordered per sub-view where depth is
// still available; perspective and oblique meshes keep the order fixed by
// projection.Prepare.
func DrawView(m *torus.Mesh, p projection.Projection, opts Options) (Frame, error) {
	w, h := opts.size()
	frame := Frame{Width: w, Height: h}

	center := geometry.NewPoint(float64(w)/2, float64(h)/2, 0)
	quarter := geometry.NewPoint(float64(w)/4, float64(h)/4, 0)

	var views []subView
	switch p.(type) {
	case projection.Axonometric:
		views = []subView{{order: orderPtr(torus.ZAscending), center: center, plane: XOY, scale: DefaultScale}}
	case projection.Perspective, projection.Oblique:
		views = []subView{{center: center, plane: XOY, scale: DefaultScale}}
	case projection.Orthogonal:
		front := geometry.NewPoint(center.X-quarter.X, center.Y-quarter.Y, 0)
		side := geometry.NewPoint(center.X+quarter.X, center.Y-quarter.Y, 0)
		top := geometry.NewPoint(center.X-quarter.X, center.Y+quarter.Y, 0)
		half := DefaultScale / 2
		views = []subView{
			{order: orderPtr(torus.ZAscending), center: front, plane: XOY, scale: half},
			{order: orderPtr(torus.XAscending), center: side, plane: ZOY, scale: half},
			{order: orderPtr(torus.YAscending), center: top, plane: XOZ, scale: half},
		}
		frame.Labels = orthogonalCaptions(front, side, top)
	default:
		return Frame{}, fmt.Errorf("draw view: %w: %T", projection.ErrUnknownProjection, p)
	}

	if _, ok := p.(projection.Orthogonal); !ok {
		frame.Axes, frame.Labels = axisGizmo()
	}

	clamped := torus.Clamp(m, MaxCoordinate)
	for _, v := range views {
		facets := clamped.Facets
		if v.order != nil {
			sorted, err := clamped.Sorted(*v.order)
			if err != nil {
				return Frame{}, fmt.Errorf("draw view: %w", err)
			}
			facets = sorted.Facets
		}

		polygons, err := projectFacets(facets, v, opts)
		if err != nil {
			return Frame{}, fmt.Errorf("draw view: %w", err)
		}
		frame.Polygons = append(frame.Polygons, polygons...)
	}

	return frame, nil
}

func projectFacets(facets []torus.Facet, v subView, opts Options) ([]Polygon, error) {
	polygons := make([]Polygon, 0, len(facets))
	for _, f := range facets {
		points, err := Project(f.Points(), v.center, v.plane, v.scale)
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, Polygon{
			Points: points,
			Fill:   Shade(opts.Color, opts.Light, v.center, f.Center),
			Stroke: StrokeColor,
		})
	}
	return polygons, nil
}

// axisGizmo returns the x/y/z indicator drawn in the top-left corner
func axisGizmo() ([]Segment, []Label) {
	const (
		textOffset = 10.0
		increment  = 50.0
		offset     = 100.0
	)
	start := Point2{X: offset / 2, Y: offset}

	axes := []Segment{
		{From: start, To: Point2{X: start.X, Y: start.Y - increment}},
		{From: start, To: Point2{X: start.X + increment, Y: start.Y}},
		{From: start, To: Point2{X: start.X + increment, Y: start.Y - increment}},
	}
	labels := []Label{
		{Text: "y", At: Point2{X: start.X, Y: start.Y - increment - textOffset}},
		{Text: "x", At: Point2{X: start.X + increment + textOffset, Y: start.Y}},
		{Text: "z", At: Point2{X: start.X + increment + textOffset, Y: start.Y - increment - textOffset}},
	}
	return axes, labels
}

func orthogonalCaptions(front, side, top geometry.Point) []Label {
	const textOffset = 50.0
	return []Label{
		{Text: "Front", At: Point2{X: front.X - textOffset*3, Y: front.Y - textOffset*2}},
		{Text: "Top", At: Point2{X: top.X - textOffset*3, Y: top.Y - textOffset*3}},
		{Text: "Side", At: Point2{X: side.X - textOffset*3, Y: side.Y - textOffset*2}},
	}
}

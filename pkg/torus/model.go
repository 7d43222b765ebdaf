package torus

import (
	"github.com/philipparndt/torusview/pkg/geometry"
)

// Edge is a directed segment between two mesh points
type Edge struct {
	Start geometry.Point
	End   geometry.Point
}

// NewEdge creates a new edge
func NewEdge(start, end geometry.Point) Edge {
	return Edge{Start: start, End: end}
}

// Points returns the edge as its explicit [start, end] point list
func (e Edge) Points() [2]geometry.Point {
	return [2]geometry.Point{e.Start, e.End}
}

// Reversed returns the edge with start and end swapped
func (e Edge) Reversed() Edge {
	return Edge{Start: e.End, End: e.Start}
}

// Facet is a quad bounded by four edges
type Facet struct {
	Edges  [4]Edge
	Center geometry.Point
}

// NewFacet creates a facet and computes its centroid.
// The centroid averages both endpoints of every edge, so a corner shared by
// two edges is counted twice.
func NewFacet(edges [4]Edge) Facet {
	f := Facet{Edges: edges}
	f.Center = geometry.Centroid(f.Points())
	return f
}

// Points returns the 8 boundary points in edge order
func (f Facet) Points() []geometry.Point {
	points := make([]geometry.Point, 0, 2*len(f.Edges))
	for _, e := range f.Edges {
		points = append(points, e.Start, e.End)
	}
	return points
}

// Mesh is a torus quad mesh together with the parameters it was built from
type Mesh struct {
	MinorRadius float64
	MinorAngle  float64
	MajorRadius float64
	MajorAngle  float64
	Facets      []Facet
}

// withFacets returns a mesh sharing m's parameters with new facets
func (m *Mesh) withFacets(facets []Facet) *Mesh {
	return &Mesh{
		MinorRadius: m.MinorRadius,
		MinorAngle:  m.MinorAngle,
		MajorRadius: m.MajorRadius,
		MajorAngle:  m.MajorAngle,
		Facets:      facets,
	}
}

// Copy returns a deep copy of the mesh
func (m *Mesh) Copy() *Mesh {
	facets := make([]Facet, len(m.Facets))
	copy(facets, m.Facets)
	return m.withFacets(facets)
}

// FacetCount returns the number of facets in the mesh
func (m *Mesh) FacetCount() int {
	return len(m.Facets)
}

// BoundingBox calculates the bounding box of all facet points
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, f := range m.Facets {
		for _, e := range f.Edges {
			bbox.Extend(e.Start)
			bbox.Extend(e.End)
		}
	}
	return bbox
}

// Clamp returns a copy of the mesh with every coordinate limited to
// [-limit, limit]. Centroids are recomputed from the clamped points.
func Clamp(m *Mesh, limit float64) *Mesh {
	return m.mapPoints(func(p geometry.Point) geometry.Point {
		return p.Clamp(limit)
	})
}

// mapPoints builds a new mesh by sending every edge point through fn
func (m *Mesh) mapPoints(fn func(geometry.Point) geometry.Point) *Mesh {
	facets := make([]Facet, len(m.Facets))
	for i, f := range m.Facets {
		var edges [4]Edge
		for j, e := range f.Edges {
			edges[j] = NewEdge(fn(e.Start), fn(e.End))
		}
		facets[i] = NewFacet(edges)
	}
	return m.withFacets(facets)
}

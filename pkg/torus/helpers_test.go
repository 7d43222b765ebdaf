package torus

import (
	"math"

	"github.com/philipparndt/torusview/pkg/geometry"
)

func sqrt(v float64) float64 {
	return math.Sqrt(v)
}

// square returns a unit quad in the XY plane centered on (x, y, z)
func square(x, y, z float64) Facet {
	a := geometry.NewPoint(x-1, y-1, z)
	b := geometry.NewPoint(x+1, y-1, z)
	c := geometry.NewPoint(x+1, y+1, z)
	d := geometry.NewPoint(x-1, y+1, z)
	return NewFacet([4]Edge{NewEdge(a, b), NewEdge(b, c), NewEdge(c, d), NewEdge(d, a)})
}

func meshOf(facets ...Facet) *Mesh {
	return &Mesh{MinorRadius: 1, MinorAngle: 90, MajorRadius: 2, MajorAngle: 90, Facets: facets}
}

func centers(facets []Facet) []geometry.Point {
	out := make([]geometry.Point, len(facets))
	for i, f := range facets {
		out[i] = f.Center
	}
	return out
}

package torus

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/torusview/pkg/geometry"
)

// ErrDegenerateAngle is returned when an angle step does not tessellate a
// full turn into at least one segment
var ErrDegenerateAngle = errors.New("degenerate angle step")

// Build generates a torus mesh. Angles are in degrees; the number of steps
// around each circle is 360 / int(angle), so angles that do not divide 360
// truncate the tessellation.
func Build(minorRadius, minorAngle, majorRadius, majorAngle float64) (*Mesh, error) {
	minorSteps, err := steps(minorAngle)
	if err != nil {
		return nil, fmt.Errorf("build torus: minor angle: %w", err)
	}
	majorSteps, err := steps(majorAngle)
	if err != nil {
		return nil, fmt.Errorf("build torus: major angle: %w", err)
	}

	g := grid{
		minorSteps: minorSteps,
		majorSteps: majorSteps,
	}

	points := g.points(minorRadius, minorAngle, majorRadius, majorAngle)
	edges := g.edges(points)

	return &Mesh{
		MinorRadius: minorRadius,
		MinorAngle:  minorAngle,
		MajorRadius: majorRadius,
		MajorAngle:  majorAngle,
		Facets:      g.facets(edges),
	}, nil
}

func steps(angle float64) (int, error) {
	a := int(angle)
	if a == 0 {
		return 0, fmt.Errorf("%w: %v", ErrDegenerateAngle, angle)
	}
	n := 360 / a
	if n <= 0 {
		return 0, fmt.Errorf("%w: %v yields %d steps", ErrDegenerateAngle, angle, n)
	}
	return n, nil
}

// grid indexes the flattened point space, row-major by major index
type grid struct {
	minorSteps int
	majorSteps int
}

func (g grid) size() int {
	return g.minorSteps * g.majorSteps
}

// rowStart returns the index of the first point in i's major row
func (g grid) rowStart(i int) int {
	return (i / g.minorSteps) * g.minorSteps
}

func (g grid) points(r, minorAngle, R, majorAngle float64) []geometry.Point {
	minorRad := geometry.Radians(minorAngle)
	majorRad := geometry.Radians(majorAngle)

	points := make([]geometry.Point, 0, g.size())
	for major := 0; major < g.majorSteps; major++ {
		sinPhi, cosPhi := math.Sincos(float64(major) * majorRad)
		for minor := 0; minor < g.minorSteps; minor++ {
			sinTheta, cosTheta := math.Sincos(float64(minor) * minorRad)
			ring := R + r*cosTheta
			points = append(points, geometry.NewPoint(ring*cosPhi, r*sinTheta, ring*sinPhi))
		}
	}
	return points
}

// edges returns the longitudinal edges followed by the crossed edges.
// A crossed edge joins a point to the same minor offset one row ahead; the
// destination wraps modulo the whole grid, which closes the last row onto
// the first.
func (g grid) edges(points []geometry.Point) []Edge {
	n := g.size()
	edges := make([]Edge, 2*n)

	for i := 0; i < n; i++ {
		start := g.rowStart(i)
		minor := i % g.minorSteps
		edges[i] = NewEdge(points[start+minor], points[start+(minor+1)%g.minorSteps])
	}

	for i := 0; i < n; i++ {
		start := g.rowStart(i)
		minor := i % g.minorSteps
		edges[n+i] = NewEdge(points[start+minor], points[(start+minor+g.minorSteps)%n])
	}

	return edges
}

func (g grid) facets(edges []Edge) []Facet {
	n := g.size()
	facets := make([]Facet, 0, n)

	for i := 0; i < n; i++ {
		minor := i % g.minorSteps
		facets = append(facets, NewFacet([4]Edge{
			edges[i],
			edges[g.rowStart(i)+(minor+1)%g.minorSteps+n],
			edges[(i+g.minorSteps)%n].Reversed(),
			edges[i+n].Reversed(),
		}))
	}

	return facets
}

// Package analysis computes statistics of torus meshes.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/torusview/pkg/geometry"
	"github.com/philipparndt/torusview/pkg/torus"
)

// EdgeInfo contains information about an edge in the mesh
type EdgeInfo struct {
	Start   geometry.Point
	End     geometry.Point
	Length  float64
	FacetID int
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Point
	FacetCount  int
	// EdgeCount counts every facet edge; shared edges appear twice
	EdgeCount       int
	UniqueEdgeCount int
	PointCount      int
	MinEdgeLength   float64
	MaxEdgeLength   float64
	AvgEdgeLength   float64
	AllEdges        []EdgeInfo
}

type pointKey [3]float64

func keyOf(p geometry.Point) pointKey {
	return pointKey{p.X, p.Y, p.Z}
}

// AnalyzeMesh performs comprehensive analysis on a mesh
func AnalyzeMesh(m *torus.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox: m.BoundingBox(),
		FacetCount:  m.FacetCount(),
		AllEdges:    make([]EdgeInfo, 0, 4*m.FacetCount()),
	}
	if m.FacetCount() > 0 {
		result.Dimensions = result.BoundingBox.Size()
	}

	points := make(map[pointKey]struct{})
	edges := make(map[[2]pointKey]struct{})

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i, f := range m.Facets {
		for _, e := range f.Edges {
			length := e.Start.Distance(e.End)
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:   e.Start,
				End:     e.End,
				Length:  length,
				FacetID: i,
			})

			a, b := keyOf(e.Start), keyOf(e.End)
			points[a] = struct{}{}
			points[b] = struct{}{}
			if less(b, a) {
				a, b = b, a
			}
			edges[[2]pointKey{a, b}] = struct{}{}

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(result.AllEdges)
	result.UniqueEdgeCount = len(edges)
	result.PointCount = len(points)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

func less(a, b pointKey) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	return edges[:min(count, len(edges))]
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	return edges[:min(count, len(edges))]
}

// FindNearestPoint finds the mesh point nearest to a given point
func FindNearestPoint(m *torus.Mesh, point geometry.Point) (geometry.Point, float64) {
	var nearest geometry.Point
	minDistance := math.MaxFloat64

	for _, f := range m.Facets {
		for _, p := range f.Points() {
			distance := point.Distance(p)
			if distance < minDistance {
				minDistance = distance
				nearest = p
			}
		}
	}

	return nearest, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatPoint formats the spatial part of a point
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", p.X, p.Y, p.Z)
}

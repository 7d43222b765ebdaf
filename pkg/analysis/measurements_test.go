package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/torusview/pkg/geometry"
	"github.com/philipparndt/torusview/pkg/torus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeMeshCounts(t *testing.T) {
	tests := []struct {
		minorAngle, majorAngle float64
		facets, points         int
	}{
		{45, 45, 64, 64},
		{90, 30, 48, 48},
		{120, 90, 12, 12},
	}

	for _, tt := range tests {
		m, err := torus.Build(50, tt.minorAngle, 150, tt.majorAngle)
		require.NoError(t, err)

		r := AnalyzeMesh(m)
		assert.Equal(t, tt.facets, r.FacetCount)
		assert.Equal(t, 4*tt.facets, r.EdgeCount)
		assert.Equal(t, 2*tt.points, r.UniqueEdgeCount)
		assert.Equal(t, tt.points, r.PointCount)
	}
}

func TestAnalyzeMeshBoundsAndLengths(t *testing.T) {
	m, err := torus.Build(50, 90, 150, 90)
	require.NoError(t, err)

	r := AnalyzeMesh(m)
	assert.InDelta(t, 400, r.Dimensions.X, 1e-6)
	assert.InDelta(t, 100, r.Dimensions.Y, 1e-6)
	assert.InDelta(t, 400, r.Dimensions.Z, 1e-6)

	// minor circle sides are r*sqrt(2); major sides are (R-r)*sqrt(2) to (R+r)*sqrt(2)
	assert.InDelta(t, 50*math.Sqrt2, r.MinEdgeLength, 1e-6)
	assert.InDelta(t, 200*math.Sqrt2, r.MaxEdgeLength, 1e-6)
	assert.Greater(t, r.AvgEdgeLength, r.MinEdgeLength)
	assert.Less(t, r.AvgEdgeLength, r.MaxEdgeLength)
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	r := AnalyzeMesh(&torus.Mesh{})
	assert.Zero(t, r.EdgeCount)
	assert.Zero(t, r.MinEdgeLength)
	assert.Equal(t, geometry.Point{}, r.Dimensions)
}

func TestFindEdges(t *testing.T) {
	m, err := torus.Build(50, 90, 150, 90)
	require.NoError(t, err)
	r := AnalyzeMesh(m)

	longest := FindLongestEdges(r, 3)
	require.Len(t, longest, 3)
	assert.InDelta(t, r.MaxEdgeLength, longest[0].Length, 1e-9)
	assert.GreaterOrEqual(t, longest[0].Length, longest[2].Length)

	shortest := FindShortestEdges(r, 1000)
	assert.Len(t, shortest, r.EdgeCount)
	assert.InDelta(t, r.MinEdgeLength, shortest[0].Length, 1e-9)
}

func TestFindNearestPoint(t *testing.T) {
	m, err := torus.Build(50, 90, 150, 90)
	require.NoError(t, err)

	p, d := FindNearestPoint(m, geometry.NewPoint(210, 0, 0))
	assert.InDelta(t, 200, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
	assert.InDelta(t, 10, d, 1e-9)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.500000 units", FormatMeasurement(1.5, ""))
	assert.Equal(t, "2.000000 px", FormatMeasurement(2, "px"))
	assert.Equal(t, "(1.000000, 2.000000, 3.000000)", FormatPoint(geometry.NewPoint(1, 2, 3)))
}

package torus

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortOrder(t *testing.T) {
	for _, o := range []SortOrder{ZAscending, ZDescending, YAscending, YDescending, XAscending, XDescending} {
		parsed, err := ParseSortOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}

	_, err := ParseSortOrder("w_ascending")
	assert.ErrorIs(t, err, ErrUnknownSortOrder)
}

func TestSortFacetsUnknownOrder(t *testing.T) {
	err := SortFacets([]Facet{square(0, 0, 0)}, SortOrder(42))
	assert.ErrorIs(t, err, ErrUnknownSortOrder)
}

func TestSortFacetsTieBreaks(t *testing.T) {
	tests := []struct {
		name  string
		order SortOrder
		want  [][3]float64
	}{
		{
			"z ascending breaks ties by x then y", ZAscending,
			[][3]float64{{0, 5, 1}, {1, 0, 1}, {1, 2, 1}, {0, 0, 2}},
		},
		{
			"z descending keeps ascending tie-breaks", ZDescending,
			[][3]float64{{0, 0, 2}, {0, 5, 1}, {1, 0, 1}, {1, 2, 1}},
		},
		{
			"x ascending breaks ties by y then z", XAscending,
			[][3]float64{{0, 0, 2}, {0, 5, 1}, {1, 0, 1}, {1, 2, 1}},
		},
		{
			"y ascending breaks ties by z then x", YAscending,
			[][3]float64{{1, 0, 1}, {0, 0, 2}, {1, 2, 1}, {0, 5, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facets := []Facet{square(1, 2, 1), square(0, 0, 2), square(1, 0, 1), square(0, 5, 1)}
			require.NoError(t, SortFacets(facets, tt.order))

			got := make([][3]float64, len(facets))
			for i, c := range centers(facets) {
				got[i] = [3]float64{c.X, c.Y, c.Z}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortAscendingDescendingReverse(t *testing.T) {
	m := buildTestMesh(t)
	// break the torus symmetry so every centroid has a distinct depth
	m, err := Rotate(m, 13, 29, 7)
	require.NoError(t, err)

	asc, err := m.Sorted(ZAscending)
	require.NoError(t, err)
	desc, err := m.Sorted(ZDescending)
	require.NoError(t, err)

	reversed := slices.Clone(desc.Facets)
	slices.Reverse(reversed)
	assert.Equal(t, asc.Facets, reversed)
}

func TestSortedLeavesInputUntouched(t *testing.T) {
	m := meshOf(square(0, 0, 3), square(0, 0, 1), square(0, 0, 2))
	before := centers(m.Facets)

	_, err := m.Sorted(ZAscending)
	require.NoError(t, err)
	assert.Equal(t, before, centers(m.Facets))
}

func TestEndToEndPerspectiveOrder(t *testing.T) {
	m := buildTestMesh(t)
	require.Equal(t, 64, m.FacetCount())

	rotated, err := Rotate(m, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 64, rotated.FacetCount())
	for i := range m.Facets {
		assert.Equal(t, m.Facets[i].Center, rotated.Facets[i].Center)
	}

	minZ := rotated.Facets[0].Center.Z
	for _, f := range rotated.Facets {
		minZ = min(minZ, f.Center.Z)
	}

	sorted, err := rotated.Sorted(ZAscending)
	require.NoError(t, err)
	projected := Perspective(sorted, 300)

	assert.InDelta(t, minZ, sorted.Facets[0].Center.Z, tol)
	assert.Equal(t, Perspective(meshOf(sorted.Facets[0]), 300).Facets[0], projected.Facets[0])
}

package render

import (
	"testing"

	"github.com/philipparndt/torusview/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	center := geometry.NewPoint(100, 200, 0)
	points := []geometry.Point{geometry.NewPoint(10, 20, 30)}

	tests := []struct {
		plane PlaneType
		scale float64
		want  Point2
	}{
		{XOY, 1, Point2{X: 110, Y: 180}},
		{XOY, 0.5, Point2{X: 105, Y: 190}},
		{XOZ, 1, Point2{X: 110, Y: 170}},
		{ZOY, 1, Point2{X: 130, Y: 180}},
	}
	for _, tt := range tests {
		t.Run(tt.plane.String(), func(t *testing.T) {
			got, err := Project(points, center, tt.plane, tt.scale)
			require.NoError(t, err)
			assert.Equal(t, []Point2{tt.want}, got)
		})
	}
}

func TestProjectUnknownPlane(t *testing.T) {
	_, err := Project([]geometry.Point{geometry.NewPoint(0, 0, 0)}, geometry.NewPoint(0, 0, 0), PlaneType(7), 1)
	assert.ErrorIs(t, err, ErrUnknownPlane)
}

package viewer

import (
	"testing"

	"github.com/philipparndt/torusview/pkg/torus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraRotateWraps(t *testing.T) {
	c := NewCamera()
	c.Rotate(20, -20)
	assert.InDelta(t, 10, c.RotationY, 1e-9)
	assert.InDelta(t, 350, c.RotationX, 1e-9)

	c.Rotate(700, 0)
	assert.InDelta(t, 0, c.RotationY, 1e-9)
}

func TestCameraZoomIsBounded(t *testing.T) {
	c := NewCamera()
	c.ZoomBy(0.5)
	assert.InDelta(t, 1.5, c.Zoom, 1e-9)

	for i := 0; i < 100; i++ {
		c.ZoomBy(1)
	}
	assert.Equal(t, maxZoom, c.Zoom)

	for i := 0; i < 100; i++ {
		c.ZoomBy(-0.9)
	}
	assert.Equal(t, minZoom, c.Zoom)

	c.Reset()
	assert.Equal(t, *NewCamera(), *c)
}

func TestCameraApply(t *testing.T) {
	m, err := torus.Build(1, 90, 3, 90)
	require.NoError(t, err)

	same, err := NewCamera().Apply(m)
	require.NoError(t, err)
	assert.Same(t, m, same)

	c := &Camera{RotationY: 90, Zoom: 2}
	moved, err := c.Apply(m)
	require.NoError(t, err)

	expected, err := torus.Rotate(m, 0, 90, 0)
	require.NoError(t, err)
	expected, err = torus.Scale(expected, 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, expected.Facets, moved.Facets)
}

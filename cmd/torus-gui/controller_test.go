package main

import (
	"testing"

	"github.com/philipparndt/torusview/pkg/projection"
	"github.com/philipparndt/torusview/pkg/render"
	"github.com/philipparndt/torusview/pkg/scene"
	"github.com/philipparndt/torusview/pkg/torus"
	"github.com/philipparndt/torusview/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultTorus = scene.Torus{MinorRadius: 50, MinorAngle: 45, MajorRadius: 150, MajorAngle: 45}

func TestControllerNeedsModel(t *testing.T) {
	c := newController()

	assert.ErrorIs(t, c.apply(scene.Transform{Rotate: []float64{10, 0, 0}}), errNoModel)
	_, err := c.draw(projection.Orthogonal{}, nil, render.Options{})
	assert.ErrorIs(t, err, errNoModel)
}

func TestControllerBuildAndTransform(t *testing.T) {
	c := newController()
	require.NoError(t, c.build(defaultTorus))
	assert.Equal(t, 64, c.model.FacetCount())

	before := c.model
	require.NoError(t, c.apply(scene.Transform{Translate: []float64{0, 0, 0}}))
	assert.Same(t, before, c.model)

	require.NoError(t, c.apply(scene.Transform{Translate: []float64{1, 2, 3}}))
	want, err := torus.Translate(before, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, want.Facets, c.model.Facets)
}

func TestControllerKeepsModelOnFailure(t *testing.T) {
	c := newController()
	require.NoError(t, c.build(defaultTorus))
	before := c.model

	bad := defaultTorus
	bad.MajorAngle = 0.5
	assert.ErrorIs(t, c.build(bad), torus.ErrDegenerateAngle)
	assert.Same(t, before, c.model)

	bad.MajorAngle = 0
	assert.ErrorIs(t, c.build(bad), scene.ErrInvalidScene)
	assert.Same(t, before, c.model)
}

func TestControllerDraw(t *testing.T) {
	c := newController()
	require.NoError(t, c.build(defaultTorus))

	img, err := c.draw(projection.Axonometric{RX: 20}, nil, render.Options{Width: 300, Height: 200})
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

}

func TestControllerClearKeepsModel(t *testing.T) {
	c := newController()
	require.NoError(t, c.build(defaultTorus))
	before := c.model

	c.camera.Rotate(40, 20)
	c.clear()
	assert.Same(t, before, c.model)
	assert.Equal(t, *viewer.NewCamera(), *c.camera)

	_, err := c.draw(projection.Orthogonal{}, nil, render.Options{Width: 120, Height: 80})
	require.NoError(t, err)
}

func TestParseFloats(t *testing.T) {
	got, err := parseFloats([]string{"x", "y"}, []string{" 1.5", "-2"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2}, got)

	_, err = parseFloats([]string{"x", "y"}, []string{"1", "abc"})
	assert.EqualError(t, err, `y: "abc" is not a number`)
}

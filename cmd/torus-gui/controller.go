package main

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/philipparndt/torusview/pkg/projection"
	"github.com/philipparndt/torusview/pkg/render"
	"github.com/philipparndt/torusview/pkg/scene"
	"github.com/philipparndt/torusview/pkg/torus"
	"github.com/philipparndt/torusview/pkg/viewer"
)

var errNoModel = errors.New("build a torus first")

// controller holds the current model between button presses. A failed
// step leaves the previous model in place.
type controller struct {
	model  *torus.Mesh
	camera *viewer.Camera
}

func newController() *controller {
	return &controller{camera: viewer.NewCamera()}
}

func (c *controller) build(t scene.Torus) error {
	if t.MinorRadius == 0 || t.MinorAngle == 0 || t.MajorRadius == 0 || t.MajorAngle == 0 {
		return fmt.Errorf("%w: torus parameters must be non-zero", scene.ErrInvalidScene)
	}

	m, err := torus.Build(t.MinorRadius, t.MinorAngle, t.MajorRadius, t.MajorAngle)
	if err != nil {
		scene.Logger().Error("build failed", "err", err)
		return err
	}
	c.model = m
	c.camera.Reset()
	scene.Logger().Debug("torus built", "facets", m.FacetCount())
	return nil
}

func (c *controller) apply(step scene.Transform) error {
	if c.model == nil {
		return errNoModel
	}

	m, err := scene.ApplyTransforms(c.model, []scene.Transform{step})
	if err != nil {
		scene.Logger().Error("transform failed", "err", err)
		return err
	}
	c.model = m
	scene.Logger().Debug("transform applied")
	return nil
}

func (c *controller) draw(p projection.Projection, view *projection.View, opts render.Options) (image.Image, error) {
	if c.model == nil {
		return nil, errNoModel
	}

	m, err := c.camera.Apply(c.model)
	if err != nil {
		return nil, err
	}
	res, err := scene.Draw(m, p, view, opts)
	if err != nil {
		scene.Logger().Error("draw failed", "err", err)
		return nil, err
	}

	canvas, err := viewer.RenderFrame(viewer.RasterizerScanline, res.Frame)
	if err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}

// clear resets the camera. The model survives so the next draw shows it again.
func (c *controller) clear() {
	c.camera.Reset()
}

// parseFloats parses every field, naming the first one that fails
func parseFloats(names []string, values []string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", names[i], v)
		}
		out[i] = f
	}
	return out, nil
}

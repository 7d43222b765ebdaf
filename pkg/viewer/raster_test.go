package viewer

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/philipparndt/torusview/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 255, A: 255}

func square(x, y, size float64) []render.Point2 {
	return []render.Point2{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}
}

func TestImageCanvasClear(t *testing.T) {
	c := NewImageCanvas(4, 3)
	c.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, Background, c.RGBA().RGBAAt(x, y))
		}
	}
}

func TestImageCanvasFillPolygon(t *testing.T) {
	c := NewImageCanvas(20, 20)
	c.Clear()
	require.NoError(t, c.FillPolygon(square(5, 5, 10), red))

	img := c.RGBA()
	assert.Equal(t, red, img.RGBAAt(5, 5))
	assert.Equal(t, red, img.RGBAAt(10, 10))
	assert.Equal(t, red, img.RGBAAt(14, 14))
	assert.Equal(t, Background, img.RGBAAt(15, 10))
	assert.Equal(t, Background, img.RGBAAt(10, 15))
	assert.Equal(t, Background, img.RGBAAt(4, 10))
}

func TestImageCanvasFillRepeatedPoints(t *testing.T) {
	// facets repeat every shared corner
	pts := []render.Point2{
		{X: 2, Y: 2}, {X: 8, Y: 2},
		{X: 8, Y: 2}, {X: 8, Y: 8},
		{X: 8, Y: 8}, {X: 2, Y: 8},
		{X: 2, Y: 8}, {X: 2, Y: 2},
	}
	c := NewImageCanvas(10, 10)
	c.Clear()
	require.NoError(t, c.FillPolygon(pts, red))

	assert.Equal(t, red, c.RGBA().RGBAAt(5, 5))
	assert.Equal(t, Background, c.RGBA().RGBAAt(9, 5))
}

func TestImageCanvasFillClipsToBounds(t *testing.T) {
	c := NewImageCanvas(10, 10)
	c.Clear()
	require.NoError(t, c.FillPolygon(square(-100, -100, 5000), red))

	assert.Equal(t, red, c.RGBA().RGBAAt(0, 0))
	assert.Equal(t, red, c.RGBA().RGBAAt(9, 9))
}

func TestImageCanvasStroke(t *testing.T) {
	c := NewImageCanvas(20, 20)
	c.Clear()
	require.NoError(t, c.StrokePolygon(square(2, 2, 10), red))

	img := c.RGBA()
	assert.Equal(t, red, img.RGBAAt(2, 2))
	assert.Equal(t, red, img.RGBAAt(7, 2))
	assert.Equal(t, red, img.RGBAAt(12, 7))
	assert.Equal(t, red, img.RGBAAt(2, 12))
	assert.Equal(t, Background, img.RGBAAt(7, 7))
}

func TestImageCanvasStrokeLine(t *testing.T) {
	c := NewImageCanvas(10, 10)
	c.Clear()
	require.NoError(t, c.StrokeLine(render.Point2{X: 0, Y: 0}, render.Point2{X: 9, Y: 9}, red))

	for i := 0; i < 10; i++ {
		assert.Equal(t, red, c.RGBA().RGBAAt(i, i))
	}
	assert.Equal(t, Background, c.RGBA().RGBAAt(9, 0))
}

func TestImageCanvasStrokeText(t *testing.T) {
	c := NewImageCanvas(60, 30)
	c.Clear()
	require.NoError(t, c.StrokeText("Front", render.Point2{X: 5, Y: 20}, render.StrokeColor))

	painted := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 60; x++ {
			if c.RGBA().RGBAAt(x, y) != Background {
				painted++
			}
		}
	}
	assert.Positive(t, painted)
}

func TestImageCanvasSavePNG(t *testing.T) {
	c := NewImageCanvas(8, 8)
	c.Clear()

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, c.SavePNG(path))
	assert.FileExists(t, path)

	err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"))
	assert.Error(t, err)
}

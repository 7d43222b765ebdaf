// Package viewer provides raster surfaces for rendered frames and the
// interactive widget used by the desktop viewer.
package viewer

import (
	"errors"
	"fmt"
	"image"

	"github.com/philipparndt/torusview/pkg/render"
)

// ErrUnknownRasterizer is returned for an unsupported rasterizer name
var ErrUnknownRasterizer = errors.New("unknown rasterizer")

// Rasterizer names accepted by NewCanvas
const (
	RasterizerGG       = "gg"
	RasterizerScanline = "scanline"
)

// Canvas is a Surface whose result can be read back and saved
type Canvas interface {
	render.Surface
	Image() image.Image
	SavePNG(path string) error
	Close() error
}

var (
	_ Canvas = (*ImageCanvas)(nil)
	_ Canvas = (*GGCanvas)(nil)
)

// NewCanvas creates a canvas for the named rasterizer
func NewCanvas(rasterizer string, width, height int) (Canvas, error) {
	switch rasterizer {
	case RasterizerGG, "":
		return NewGGCanvas(width, height), nil
	case RasterizerScanline:
		return NewImageCanvas(width, height), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRasterizer, rasterizer)
}

// RenderFrame paints a frame onto a new canvas of the frame's size
func RenderFrame(rasterizer string, frame render.Frame) (Canvas, error) {
	c, err := NewCanvas(rasterizer, frame.Width, frame.Height)
	if err != nil {
		return nil, err
	}
	if err := render.Paint(c, frame); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

package viewer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/philipparndt/torusview/pkg/render"
)

// GGCanvas is an anti-aliased Surface backed by a gg drawing context
type GGCanvas struct {
	dc *gg.Context
}

// NewGGCanvas creates a canvas of the given size
func NewGGCanvas(width, height int) *GGCanvas {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(1)
	return &GGCanvas{dc: dc}
}

// Clear fills the canvas with the background colour
func (c *GGCanvas) Clear() {
	c.dc.ClearWithColor(gg.FromColor(Background))
}

func (c *GGCanvas) path(points []render.Point2) {
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
}

// StrokePolygon outlines a closed polygon
func (c *GGCanvas) StrokePolygon(points []render.Point2, col color.RGBA) error {
	if len(points) == 0 {
		return nil
	}
	c.path(points)
	c.dc.SetColor(col)
	return c.dc.Stroke()
}

// FillPolygon fills a closed polygon
func (c *GGCanvas) FillPolygon(points []render.Point2, col color.RGBA) error {
	if len(points) < 3 {
		return nil
	}
	c.path(points)
	c.dc.SetColor(col)
	return c.dc.Fill()
}

// StrokeLine draws a single line segment
func (c *GGCanvas) StrokeLine(from, to render.Point2, col color.RGBA) error {
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	c.dc.SetColor(col)
	return c.dc.Stroke()
}

// StrokeText stamps a bitmap caption pixel by pixel, so no font file is
// needed at runtime.
func (c *GGCanvas) StrokeText(text string, at render.Point2, col color.RGBA) error {
	mask, offset := textMask(text)
	origin := image.Pt(round(at.X)+offset.X, round(at.Y)+offset.Y)
	fill := gg.FromColor(col)

	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A == 0 {
				continue
			}
			px, py := origin.X+x, origin.Y+y
			if px < 0 || py < 0 || px >= c.dc.Width() || py >= c.dc.Height() {
				continue
			}
			c.dc.SetPixel(px, py, fill)
		}
	}
	return nil
}

// Image returns a snapshot of the drawing
func (c *GGCanvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the drawing to a PNG file
func (c *GGCanvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context
func (c *GGCanvas) Close() error {
	return c.dc.Close()
}

package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"slices"

	"github.com/philipparndt/torusview/pkg/render"
)

// Background is the colour surfaces are cleared to
var Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// ImageCanvas is a software Surface drawing into an RGBA image.
// Polygons are filled with a scanline pass and outlined with Bresenham lines.
type ImageCanvas struct {
	img *image.RGBA
}

// NewImageCanvas creates a canvas of the given size
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// RGBA returns the backing image
func (c *ImageCanvas) RGBA() *image.RGBA {
	return c.img
}

// Image returns the backing image
func (c *ImageCanvas) Image() image.Image {
	return c.img
}

// SavePNG writes the drawing to a PNG file
func (c *ImageCanvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, c.img); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return f.Close()
}

// Close is a no-op; the image stays valid
func (c *ImageCanvas) Close() error {
	return nil
}

// Clear fills the canvas with the background colour
func (c *ImageCanvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
}

// StrokePolygon outlines a closed polygon
func (c *ImageCanvas) StrokePolygon(points []render.Point2, col color.RGBA) error {
	if len(points) == 0 {
		return nil
	}
	for i := range points {
		from, to := points[i], points[(i+1)%len(points)]
		drawLine(c.img, round(from.X), round(from.Y), round(to.X), round(to.Y), col)
	}
	return nil
}

// FillPolygon fills a polygon using the even-odd rule
func (c *ImageCanvas) FillPolygon(points []render.Point2, col color.RGBA) error {
	fillPolygon(c.img, points, col)
	return nil
}

// StrokeLine draws a single line segment
func (c *ImageCanvas) StrokeLine(from, to render.Point2, col color.RGBA) error {
	drawLine(c.img, round(from.X), round(from.Y), round(to.X), round(to.Y), col)
	return nil
}

// StrokeText draws a caption with its baseline at the given point
func (c *ImageCanvas) StrokeText(text string, at render.Point2, col color.RGBA) error {
	drawText(c.img, text, at, col)
	return nil
}

// fillPolygon fills a polygon on an image using a scanline algorithm.
// Each scanline is sampled at the pixel centre; crossings are paired up
// after sorting, so self-overlapping outlines follow the even-odd rule.
func fillPolygon(img *image.RGBA, points []render.Point2, col color.RGBA) {
	if len(points) < 3 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	bounds := img.Bounds()
	yStart := int(math.Max(float64(bounds.Min.Y), math.Floor(minY)))
	yEnd := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(maxY)))

	intersections := make([]float64, 0, len(points))
	for y := yStart; y <= yEnd; y++ {
		fy := float64(y) + 0.5
		intersections = intersections[:0]

		// Find intersections with polygon edges
		for i := range points {
			a, b := points[i], points[(i+1)%len(points)]
			if a.Y == b.Y {
				continue
			}
			if (fy >= a.Y && fy < b.Y) || (fy >= b.Y && fy < a.Y) {
				t := (fy - a.Y) / (b.Y - a.Y)
				intersections = append(intersections, a.X+t*(b.X-a.X))
			}
		}
		slices.Sort(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			// Clamp to image bounds
			xStart := math.Max(float64(bounds.Min.X), math.Round(intersections[i]))
			xEnd := math.Min(float64(bounds.Max.X-1), math.Round(intersections[i+1])-1)

			// Draw horizontal line
			for x := int(xStart); x <= int(xEnd); x++ {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		// Check bounds
		if image.Pt(x1, y1).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

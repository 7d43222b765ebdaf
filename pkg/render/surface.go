package render

import (
	"fmt"
	"image/color"
)

// Surface is a raster target for frames
type Surface interface {
	Clear()
	StrokePolygon(points []Point2, col color.RGBA) error
	FillPolygon(points []Point2, col color.RGBA) error
	StrokeLine(from, to Point2, col color.RGBA) error
	StrokeText(text string, at Point2, col color.RGBA) error
}

// Paint clears the surface and draws the frame: overlay first, then every
// polygon in order, outlined and then filled.
func Paint(s Surface, frame Frame) error {
	s.Clear()

	for _, a := range frame.Axes {
		if err := s.StrokeLine(a.From, a.To, StrokeColor); err != nil {
			return fmt.Errorf("paint axis: %w", err)
		}
	}
	for _, l := range frame.Labels {
		if err := s.StrokeText(l.Text, l.At, StrokeColor); err != nil {
			return fmt.Errorf("paint label %q: %w", l.Text, err)
		}
	}

	for i, p := range frame.Polygons {
		if err := s.StrokePolygon(p.Points, p.Stroke); err != nil {
			return fmt.Errorf("paint polygon %d: %w", i, err)
		}
		if err := s.FillPolygon(p.Points, p.Fill); err != nil {
			return fmt.Errorf("paint polygon %d: %w", i, err)
		}
	}
	return nil
}

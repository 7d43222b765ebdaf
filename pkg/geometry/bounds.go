package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: NewPoint(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64),
		Max: NewPoint(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64),
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Point) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Empty reports whether no point has been added
func (b BoundingBox) Empty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Point {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Point {
	return NewPoint(
		(b.Min.X+b.Max.X)/2.0,
		(b.Min.Y+b.Max.Y)/2.0,
		(b.Min.Z+b.Max.Z)/2.0,
	)
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

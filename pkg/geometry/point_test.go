package geometry

import (
	"math"
	"testing"
)

func TestNewPointSetsW(t *testing.T) {
	p := NewPoint(1, 2, 3)
	if p.W != 1 {
		t.Errorf("NewPoint failed: expected W 1, got %v", p.W)
	}
}

func TestPointSub(t *testing.T) {
	p1 := NewPoint(5, 7, 9)
	p2 := NewPoint(1, 2, 3)
	result := p1.Sub(p2)

	expected := NewPoint(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := NewPoint(0, 0, 0)
	p2 := NewPoint(3, 4, 0)
	distance := p1.Distance(p2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestPointClamp(t *testing.T) {
	p := NewPoint(1e7, -1e7, 12).Clamp(5000)

	expected := NewPoint(5000, -5000, 12)
	if p != expected {
		t.Errorf("Clamp failed: expected %v, got %v", expected, p)
	}
}

func TestCentroidCountsRepeatedPoints(t *testing.T) {
	points := []Point{
		NewPoint(0, 0, 0),
		NewPoint(0, 0, 0),
		NewPoint(0, 0, 0),
		NewPoint(4, 8, 12),
	}

	c := Centroid(points)
	expected := NewPoint(1, 2, 3)
	if c != expected {
		t.Errorf("Centroid failed: expected %v, got %v", expected, c)
	}
}

func TestPointAxis(t *testing.T) {
	p := NewPoint(1, 2, 3)
	if p.Axis(AxisX) != 1 || p.Axis(AxisY) != 2 || p.Axis(AxisZ) != 3 {
		t.Errorf("Axis failed for %v", p)
	}
}

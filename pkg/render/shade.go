package render

import (
	"image/color"
	"math"

	"github.com/philipparndt/torusview/pkg/geometry"
)

// dimIntensity is used for facets facing away from the light
const dimIntensity = 0.2

// Light is a point light
type Light struct {
	Enabled  bool
	Position geometry.Point
}

// Intensity returns the heuristic light factor in [0, 1] for a facet whose
// centroid is facetCenter, relative to the view reference center.
func (l Light) Intensity(center, facetCenter geometry.Point) float64 {
	toCenter := l.Position.Distance(center)
	toFacet := l.Position.Distance(facetCenter)

	// farther from the light than the reference center
	if toCenter < toFacet {
		return dimIntensity
	}

	divisor := toCenter
	if divisor <= 0 {
		divisor = 1
	}

	p := math.Abs(1 - toFacet/divisor)
	if p > 1 {
		return dimIntensity
	}
	return math.Min(p*1.5, 1)
}

// Shade returns the fill color for a facet. Channels are scaled by the light
// intensity and truncated; alpha is kept.
func Shade(base color.RGBA, l Light, center, facetCenter geometry.Point) color.RGBA {
	if !l.Enabled {
		return base
	}
	p := l.Intensity(center, facetCenter)
	return color.RGBA{
		R: uint8(float64(base.R) * p),
		G: uint8(float64(base.G) * p),
		B: uint8(float64(base.B) * p),
		A: base.A,
	}
}

// Package scene describes a complete torus drawing in YAML and runs it
// through the build, transform, projection and drawing pipeline.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/philipparndt/torusview/pkg/geometry"
	"github.com/philipparndt/torusview/pkg/projection"
	"github.com/philipparndt/torusview/pkg/render"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScene is returned when a scene fails validation
var ErrInvalidScene = errors.New("invalid scene")

// DefaultColor is the model colour when a scene names none
const DefaultColor = "#3366cc"

// Torus holds the mesh parameters
type Torus struct {
	MinorRadius float64 `yaml:"minor_radius"`
	MinorAngle  float64 `yaml:"minor_angle"`
	MajorRadius float64 `yaml:"major_radius"`
	MajorAngle  float64 `yaml:"major_angle"`
}

// Transform is one step of the model transform chain. Exactly one field
// is set.
type Transform struct {
	Rotate    []float64 `yaml:"rotate,omitempty"`
	Scale     []float64 `yaml:"scale,omitempty"`
	Translate []float64 `yaml:"translate,omitempty"`
}

// Projection selects the projection and its parameters
type Projection struct {
	Type   string    `yaml:"type"`
	Rotate []float64 `yaml:"rotate,omitempty"`
	D      float64   `yaml:"d,omitempty"`
	L      float64   `yaml:"l,omitempty"`
	Alpha  float64   `yaml:"alpha,omitempty"`
}

// View is the optional camera orientation applied after projection
type View struct {
	Enabled bool    `yaml:"enabled"`
	Rho     float64 `yaml:"rho"`
	Phi     float64 `yaml:"phi"`
	Theta   float64 `yaml:"theta"`
	Legacy  bool    `yaml:"legacy,omitempty"`
}

// Light configures the shading heuristic
type Light struct {
	Enabled  bool      `yaml:"enabled"`
	Position []float64 `yaml:"position,omitempty"`
}

// Canvas is the output size in pixels
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Scene is a complete drawing description
type Scene struct {
	Torus      Torus       `yaml:"torus"`
	Transforms []Transform `yaml:"transforms,omitempty"`
	Projection Projection  `yaml:"projection"`
	View       View        `yaml:"view"`
	Light      Light       `yaml:"light"`
	Color      string      `yaml:"color"`
	Canvas     Canvas      `yaml:"canvas"`
}

// Default returns the scene used when no file is given
func Default() *Scene {
	return &Scene{
		Torus: Torus{
			MinorRadius: 50,
			MinorAngle:  45,
			MajorRadius: 150,
			MajorAngle:  45,
		},
		Projection: Projection{Type: "axonometric"},
		Color:      DefaultColor,
		Canvas:     Canvas{Width: render.DefaultWidth, Height: render.DefaultHeight},
	}
}

// Load reads and validates a scene file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene over the defaults and validates it
func Parse(data []byte) (*Scene, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Marshal encodes the scene as YAML
func (s *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidScene, fmt.Sprintf(format, args...))
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	t := s.Torus
	if t.MinorRadius == 0 || t.MinorAngle == 0 || t.MajorRadius == 0 || t.MajorAngle == 0 {
		return invalid("torus parameters must be non-zero")
	}

	for i, step := range s.Transforms {
		set := 0
		for _, v := range [][]float64{step.Rotate, step.Scale, step.Translate} {
			if v == nil {
				continue
			}
			set++
			if len(v) != 3 {
				return invalid("transform %d: expected 3 values, got %d", i, len(v))
			}
		}
		if set != 1 {
			return invalid("transform %d: expected exactly one of rotate, scale, translate", i)
		}
	}

	if _, err := s.ProjectionVariant(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if r := s.Projection.Rotate; r != nil && len(r) != 3 {
		return invalid("projection rotate: expected 3 values, got %d", len(r))
	}
	if p := s.Light.Position; p != nil && len(p) != 3 {
		return invalid("light position: expected 3 values, got %d", len(p))
	}
	if _, err := ParseColor(s.Color); err != nil {
		return err
	}
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return invalid("canvas size %dx%d", s.Canvas.Width, s.Canvas.Height)
	}
	return nil
}

// ProjectionVariant returns the configured projection
func (s *Scene) ProjectionVariant() (projection.Projection, error) {
	p, err := projection.Parse(strings.ToLower(s.Projection.Type))
	if err != nil {
		return nil, err
	}

	switch p.(type) {
	case projection.Axonometric:
		r := vec3(s.Projection.Rotate)
		return projection.Axonometric{RX: r[0], RY: r[1], RZ: r[2]}, nil
	case projection.Perspective:
		return projection.Perspective{D: s.Projection.D}, nil
	case projection.Oblique:
		return projection.Oblique{L: s.Projection.L, Alpha: s.Projection.Alpha}, nil
	}
	return p, nil
}

// ViewTransform returns the camera orientation, or nil when disabled
func (s *Scene) ViewTransform() *projection.View {
	if !s.View.Enabled {
		return nil
	}
	return &projection.View{
		Rho:    s.View.Rho,
		Phi:    s.View.Phi,
		Theta:  s.View.Theta,
		Legacy: s.View.Legacy,
	}
}

// RenderOptions returns the drawing options for the scene
func (s *Scene) RenderOptions() (render.Options, error) {
	col, err := ParseColor(s.Color)
	if err != nil {
		return render.Options{}, err
	}
	pos := vec3(s.Light.Position)
	return render.Options{
		Width:  s.Canvas.Width,
		Height: s.Canvas.Height,
		Color:  col,
		Light: render.Light{
			Enabled:  s.Light.Enabled,
			Position: geometry.NewPoint(pos[0], pos[1], pos[2]),
		},
	}, nil
}

// ParseColor parses #rgb, #rgba, #rrggbb or #rrggbbaa
func ParseColor(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(hex, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return color.RGBA{}, invalid("color %q", hex)
	}
	for _, c := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return color.RGBA{}, invalid("color %q", hex)
		}
	}

	c := gg.Hex(h)
	nrgba := color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// FormatColor returns the #rrggbb form of an opaque colour
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// vec3 pads a missing vector with zeros
func vec3(v []float64) [3]float64 {
	var out [3]float64
	copy(out[:], v)
	return out
}

package scene

import (
	"fmt"

	"github.com/philipparndt/torusview/pkg/projection"
	"github.com/philipparndt/torusview/pkg/render"
	"github.com/philipparndt/torusview/pkg/torus"
)

// Result holds every stage of a scene run
type Result struct {
	// Model is the mesh after the transform chain
	Model *torus.Mesh
	// Prepared is the model after projection and view transform
	Prepared *torus.Mesh
	Frame    render.Frame
}

// ApplyTransforms runs the transform chain over a mesh. Rotate and
// translate steps with all-zero parameters are skipped, as are scale steps
// with any zero factor.
func ApplyTransforms(m *torus.Mesh, steps []Transform) (*torus.Mesh, error) {
	log := Logger()

	for i, step := range steps {
		var (
			next *torus.Mesh
			err  error
		)
		switch {
		case step.Rotate != nil:
			r := vec3(step.Rotate)
			if allZero(r) {
				log.Debug("skipping rotate", "step", i)
				continue
			}
			next, err = torus.Rotate(m, r[0], r[1], r[2])
		case step.Scale != nil:
			s := vec3(step.Scale)
			if anyZero(s) {
				log.Debug("skipping scale with zero factor", "step", i, "factors", s)
				continue
			}
			next, err = torus.Scale(m, s[0], s[1], s[2])
		case step.Translate != nil:
			d := vec3(step.Translate)
			if allZero(d) {
				log.Debug("skipping translate", "step", i)
				continue
			}
			next, err = torus.Translate(m, d[0], d[1], d[2])
		default:
			return nil, invalid("transform %d is empty", i)
		}
		if err != nil {
			return nil, fmt.Errorf("transform %d: %w", i, err)
		}
		m = next
	}
	return m, nil
}

// Build creates the torus mesh and runs the transform chain
func (s *Scene) Build() (*torus.Mesh, error) {
	t := s.Torus
	m, err := torus.Build(t.MinorRadius, t.MinorAngle, t.MajorRadius, t.MajorAngle)
	if err != nil {
		return nil, err
	}
	Logger().Debug("built torus", "facets", m.FacetCount())

	return ApplyTransforms(m, s.Transforms)
}

// Run builds, transforms, projects and draws the scene
func (s *Scene) Run() (*Result, error) {
	p, err := s.ProjectionVariant()
	if err != nil {
		return nil, err
	}
	opts, err := s.RenderOptions()
	if err != nil {
		return nil, err
	}

	model, err := s.Build()
	if err != nil {
		return nil, err
	}
	return Draw(model, p, s.ViewTransform(), opts)
}

// Draw projects an already transformed model and draws it
func Draw(model *torus.Mesh, p projection.Projection, view *projection.View, opts render.Options) (*Result, error) {
	prepared, err := projection.Prepare(model, p, view)
	if err != nil {
		return nil, err
	}

	frame, err := render.DrawView(prepared, p, opts)
	if err != nil {
		return nil, err
	}
	Logger().Debug("drew frame",
		"projection", p.Name(),
		"polygons", len(frame.Polygons),
		"view", view != nil)

	return &Result{Model: model, Prepared: prepared, Frame: frame}, nil
}

func allZero(v [3]float64) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

func anyZero(v [3]float64) bool {
	return v[0] == 0 || v[1] == 0 || v[2] == 0
}

package main

import (
	"github.com/philipparndt/torusview/pkg/scene"
	"github.com/spf13/cobra"
)

// sceneFlags are the scene overrides shared by every command
type sceneFlags struct {
	minorRadius float64
	minorAngle  float64
	majorRadius float64
	majorAngle  float64
	projection  string
	light       bool
	color       string
}

func (f *sceneFlags) bind(cmd *cobra.Command) {
	d := scene.Default()
	flags := cmd.Flags()
	flags.Float64Var(&f.minorRadius, "minor-radius", d.Torus.MinorRadius, "Radius of the tube")
	flags.Float64Var(&f.minorAngle, "minor-angle", d.Torus.MinorAngle, "Angular step around the tube in degrees")
	flags.Float64Var(&f.majorRadius, "major-radius", d.Torus.MajorRadius, "Distance from the torus center to the tube center")
	flags.Float64Var(&f.majorAngle, "major-angle", d.Torus.MajorAngle, "Angular step around the torus in degrees")
	flags.StringVarP(&f.projection, "projection", "p", d.Projection.Type, "Projection: axonometric, perspective, oblique or orthogonal")
	flags.BoolVar(&f.light, "light", false, "Shade facets by distance to the light")
	flags.StringVar(&f.color, "color", d.Color, "Model color as #rrggbb")
}

// load reads the scene file named in args, or the default scene, and
// applies the flags the user set explicitly
func (f *sceneFlags) load(cmd *cobra.Command, args []string) (*scene.Scene, error) {
	s := scene.Default()
	if len(args) > 0 {
		var err error
		if s, err = scene.Load(args[0]); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("minor-radius") {
		s.Torus.MinorRadius = f.minorRadius
	}
	if flags.Changed("minor-angle") {
		s.Torus.MinorAngle = f.minorAngle
	}
	if flags.Changed("major-radius") {
		s.Torus.MajorRadius = f.majorRadius
	}
	if flags.Changed("major-angle") {
		s.Torus.MajorAngle = f.majorAngle
	}
	if flags.Changed("projection") {
		s.Projection.Type = f.projection
	}
	if flags.Changed("light") {
		s.Light.Enabled = f.light
	}
	if flags.Changed("color") {
		s.Color = f.color
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

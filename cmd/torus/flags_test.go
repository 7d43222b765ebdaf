package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/torusview/pkg/analysis"
	"github.com/philipparndt/torusview/pkg/geometry"
	"github.com/philipparndt/torusview/pkg/scene"
	"github.com/philipparndt/torusview/pkg/viewer"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(t *testing.T, flags ...string) (*cobra.Command, *sceneFlags) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	var f sceneFlags
	f.bind(cmd)
	require.NoError(t, cmd.ParseFlags(flags))
	return cmd, &f
}

func TestSceneFlagsDefaults(t *testing.T) {
	cmd, f := newTestCommand(t)

	s, err := f.load(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, scene.Default(), s)
}

func TestSceneFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
torus: {minor_radius: 10, minor_angle: 90, major_radius: 30, major_angle: 90}
projection: {type: perspective, d: 300}
color: "#ff0000"
`), 0o644))

	cmd, f := newTestCommand(t, "--minor-radius", "20", "--light", "--projection", "oblique")
	s, err := f.load(cmd, []string{path})
	require.NoError(t, err)

	assert.Equal(t, 20.0, s.Torus.MinorRadius)
	assert.Equal(t, 30.0, s.Torus.MajorRadius)
	assert.Equal(t, "oblique", s.Projection.Type)
	assert.True(t, s.Light.Enabled)
	assert.Equal(t, "#ff0000", s.Color)
}

func TestSceneFlagsValidate(t *testing.T) {
	cmd, f := newTestCommand(t, "--major-angle", "0")
	_, err := f.load(cmd, nil)
	assert.ErrorIs(t, err, scene.ErrInvalidScene)

	cmd, f = newTestCommand(t, "--projection", "fisheye")
	_, err = f.load(cmd, nil)
	assert.ErrorIs(t, err, scene.ErrInvalidScene)
}

func TestRenderOnceWritesPNG(t *testing.T) {
	origOutput, origRasterizer := renderOutput, renderRasterizer
	t.Cleanup(func() { renderOutput, renderRasterizer = origOutput, origRasterizer })

	renderOutput = filepath.Join(t.TempDir(), "torus.png")
	renderRasterizer = viewer.RasterizerScanline

	require.NoError(t, renderOnce(renderCmd, nil))
	assert.FileExists(t, renderOutput)
}

func runEdgesWith(t *testing.T, count int, shortest bool, near string) string {
	t.Helper()
	origCount, origShortest, origNear := edgesCount, edgesShortest, edgesNear
	t.Cleanup(func() {
		edgesCount, edgesShortest, edgesNear = origCount, origShortest, origNear
		edgesCmd.SetOut(nil)
	})

	edgesCount, edgesShortest, edgesNear = count, shortest, near
	var out bytes.Buffer
	edgesCmd.SetOut(&out)
	require.NoError(t, runEdges(edgesCmd, nil))
	return out.String()
}

func TestEdgesLongestAndShortest(t *testing.T) {
	m, err := scene.Default().Build()
	require.NoError(t, err)
	result := analysis.AnalyzeMesh(m)

	longest := runEdgesWith(t, 3, false, "")
	assert.Contains(t, longest, "Top 3 Longest Edges")
	assert.Contains(t, longest, fmt.Sprintf("%-15.6f", result.MaxEdgeLength))
	assert.NotContains(t, longest, "Nearest point")

	shortest := runEdgesWith(t, 2, true, "")
	assert.Contains(t, shortest, "Top 2 Shortest Edges")
	assert.Contains(t, shortest, fmt.Sprintf("%-15.6f", result.MinEdgeLength))
	assert.Equal(t, 2, strings.Count(shortest, fmt.Sprintf("%-15.6f", result.MinEdgeLength)))
}

func TestEdgesNearestPoint(t *testing.T) {
	out := runEdgesWith(t, 1, false, "0, 0, 0")
	assert.Contains(t, out, "Nearest point to (0.000000, 0.000000, 0.000000)")
	assert.Contains(t, out, "(100.000000 units away)")
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("1.5, -2,3")
	require.NoError(t, err)
	assert.Equal(t, geometry.NewPoint(1.5, -2, 3), p)

	for _, bad := range []string{"1,2", "1,2,3,4", "a,b,c"} {
		_, err := parsePoint(bad)
		assert.ErrorIs(t, err, scene.ErrInvalidScene, bad)
	}
}

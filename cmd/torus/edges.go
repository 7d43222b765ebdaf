package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/torusview/pkg/analysis"
	"github.com/philipparndt/torusview/pkg/geometry"
	"github.com/philipparndt/torusview/pkg/scene"
	"github.com/spf13/cobra"
)

var (
	edgesFlags    sceneFlags
	edgesCount    int
	edgesShortest bool
	edgesNear     string
)

var edgesCmd = &cobra.Command{
	Use:   "edges [scene.yaml]",
	Short: "List the longest or shortest edges of the torus mesh",
	Long: `Measure the edges of the mesh after the scene's transforms and list the
longest (default) or shortest ones.

With --near x,y,z the mesh point closest to that position is reported too.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdges,
}

func init() {
	edgesFlags.bind(edgesCmd)
	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges instead of longest")
	edgesCmd.Flags().StringVar(&edgesNear, "near", "", "Report the mesh point nearest to x,y,z")
	rootCmd.AddCommand(edgesCmd)
}

func runEdges(cmd *cobra.Command, args []string) error {
	var near *geometry.Point
	if edgesNear != "" {
		p, err := parsePoint(edgesNear)
		if err != nil {
			return err
		}
		near = &p
	}

	s, err := edgesFlags.load(cmd, args)
	if err != nil {
		return err
	}
	m, err := s.Build()
	if err != nil {
		return err
	}
	result := analysis.AnalyzeMesh(m)

	var edges []analysis.EdgeInfo
	var title string
	if edgesShortest {
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	} else {
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total edges in mesh: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "Min edge length: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, ""))
	fmt.Fprintf(out, "Max edge length: %s\n\n", analysis.FormatMeasurement(result.MaxEdgeLength, ""))

	if len(edges) > 0 {
		fmt.Fprintf(out, "%-6s %-6s %-35s %-35s %-15s\n", "Index", "Facet", "Start", "End", "Length")
		fmt.Fprintln(out, strings.Repeat("-", 100))
		for i, edge := range edges {
			fmt.Fprintf(out, "%-6d %-6d %-35s %-35s %-15.6f\n",
				i+1,
				edge.FacetID,
				analysis.FormatPoint(edge.Start),
				analysis.FormatPoint(edge.End),
				edge.Length)
		}
	} else {
		fmt.Fprintln(out, "No edges to show.")
	}

	if near != nil {
		p, d := analysis.FindNearestPoint(m, *near)
		fmt.Fprintf(out, "\nNearest point to %s: %s (%s away)\n",
			analysis.FormatPoint(*near), analysis.FormatPoint(p), analysis.FormatMeasurement(d, ""))
	}
	return nil
}

// parsePoint reads an "x,y,z" triple
func parsePoint(value string) (geometry.Point, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return geometry.Point{}, fmt.Errorf("%w: point %q needs x,y,z", scene.ErrInvalidScene, value)
	}

	var v [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geometry.Point{}, fmt.Errorf("%w: point %q: %v", scene.ErrInvalidScene, value, err)
		}
		v[i] = f
	}
	return geometry.NewPoint(v[0], v[1], v[2]), nil
}

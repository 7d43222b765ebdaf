package main

import (
	"fmt"

	"github.com/philipparndt/torusview/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoFlags sceneFlags

var infoCmd = &cobra.Command{
	Use:   "info [scene.yaml]",
	Short: "Display information about the transformed torus mesh",
	Long:  "Show facet, edge and point counts, the bounding box and edge length statistics of the mesh after the scene's transforms.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInfo,
}

func init() {
	infoFlags.bind(infoCmd)
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := infoFlags.load(cmd, args)
	if err != nil {
		return err
	}

	m, err := s.Build()
	if err != nil {
		return err
	}
	result := analysis.AnalyzeMesh(m)

	fmt.Println("Torus Information")
	fmt.Println("=================")
	if len(args) > 0 {
		fmt.Printf("Scene: %s\n", args[0])
	}
	fmt.Printf("Minor: radius %.6f, step %.6f degrees\n", m.MinorRadius, m.MinorAngle)
	fmt.Printf("Major: radius %.6f, step %.6f degrees\n", m.MajorRadius, m.MajorAngle)
	fmt.Printf("Transforms: %d\n\n", len(s.Transforms))

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Facets: %d\n", result.FacetCount)
	fmt.Printf("  Edges: %d (%d unique)\n", result.EdgeCount, result.UniqueEdgeCount)
	fmt.Printf("  Points: %d\n\n", result.PointCount)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatPoint(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatPoint(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatPoint(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, ""))
	fmt.Printf("  Height (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, ""))
	fmt.Printf("  Depth (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, ""))
	fmt.Printf("  Diagonal: %s\n\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
	return nil
}

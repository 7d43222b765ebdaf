package main

import (
	"fmt"

	"github.com/philipparndt/torusview/pkg/analysis"
	"github.com/philipparndt/torusview/pkg/torus"
	"github.com/spf13/cobra"
)

var (
	facetsFlags    sceneFlags
	facetsOrder    string
	facetsLimit    int
	facetsPrepared bool
)

var facetsCmd = &cobra.Command{
	Use:   "facets [scene.yaml]",
	Short: "List facet centroids in paint order",
	Long: `List facets with their centroids, ordered by one of
z_ascending, z_descending, y_ascending, y_descending, x_ascending, x_descending.

With --prepared the facets are listed after the scene's projection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFacets,
}

func init() {
	facetsFlags.bind(facetsCmd)
	facetsCmd.Flags().StringVar(&facetsOrder, "order", torus.ZAscending.String(), "Sort order")
	facetsCmd.Flags().IntVarP(&facetsLimit, "count", "n", 10, "Number of facets to show (0 for all)")
	facetsCmd.Flags().BoolVar(&facetsPrepared, "prepared", false, "List facets after projection")
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, args []string) error {
	order, err := torus.ParseSortOrder(facetsOrder)
	if err != nil {
		return err
	}

	s, err := facetsFlags.load(cmd, args)
	if err != nil {
		return err
	}

	var m *torus.Mesh
	if facetsPrepared {
		res, err := s.Run()
		if err != nil {
			return err
		}
		m = res.Prepared
	} else if m, err = s.Build(); err != nil {
		return err
	}

	sorted, err := m.Sorted(order)
	if err != nil {
		return err
	}

	count := sorted.FacetCount()
	if facetsLimit > 0 && facetsLimit < count {
		count = facetsLimit
	}

	fmt.Printf("Facets by %s (%d of %d):\n", order, count, sorted.FacetCount())
	for i, f := range sorted.Facets[:count] {
		fmt.Printf("  %3d: %s\n", i+1, analysis.FormatPoint(f.Center))
	}
	return nil
}

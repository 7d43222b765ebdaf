package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/philipparndt/torusview/pkg/scene"
	"github.com/philipparndt/torusview/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "torus",
	Short: "Draw a parametric torus under axonometric, perspective, oblique or orthogonal projection",
	Long: `torus builds a quad mesh of a parametric torus, runs it through a chain of
rotate, scale and translate transforms, orders the facets for back-to-front
painting and draws them with a simple distance based light.

Scenes are described in YAML; every command also works without a scene file
using the built-in default torus.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	scene.SetLogger(l)
	gg.SetLogger(l)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

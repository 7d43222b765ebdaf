package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/philipparndt/torusview/pkg/scene"
	"github.com/philipparndt/torusview/pkg/viewer"
	"github.com/philipparndt/torusview/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	renderFlags      sceneFlags
	renderOutput     string
	renderRasterizer string
	renderWatch      bool
)

var renderCmd = &cobra.Command{
	Use:   "render [scene.yaml]",
	Short: "Render a scene to a PNG image",
	Long: `Render builds the torus described by the scene, applies its transforms,
projects it and writes the painted frame to a PNG file.

With --watch the scene file is re-rendered whenever it changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderFlags.bind(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "torus.png", "Output PNG file")
	renderCmd.Flags().StringVar(&renderRasterizer, "rasterizer", viewer.RasterizerGG, "Rasterizer: gg or scanline")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Re-render when the scene file changes")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := renderOnce(cmd, args); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", renderOutput)

	if !renderWatch {
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("--watch needs a scene file")
	}
	return watchScene(cmd, args)
}

func renderOnce(cmd *cobra.Command, args []string) error {
	s, err := renderFlags.load(cmd, args)
	if err != nil {
		return err
	}

	res, err := s.Run()
	if err != nil {
		return err
	}

	c, err := viewer.RenderFrame(renderRasterizer, res.Frame)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.SavePNG(renderOutput); err != nil {
		return err
	}
	scene.Logger().Info("rendered scene",
		"projection", s.Projection.Type,
		"facets", res.Model.FacetCount(),
		"output", renderOutput)
	return nil
}

func watchScene(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := scene.Logger()
	fw, err := watcher.NewFileWatcher(200*time.Millisecond, log)
	if err != nil {
		return err
	}
	defer fw.Close()

	// runs must not overlap
	var mu sync.Mutex
	err = fw.Watch(args[:1], func(path string) {
		mu.Lock()
		defer mu.Unlock()

		if err := renderOnce(cmd, args); err != nil {
			log.Error("re-render failed", "path", path, "err", err)
			return
		}
		fmt.Printf("Re-rendered %s\n", renderOutput)
	})
	if err != nil {
		return err
	}

	fw.Start(ctx)
	fmt.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	<-ctx.Done()
	return nil
}

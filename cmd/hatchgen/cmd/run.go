package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"

	"github.com/sprhawk/pyslm/config"
	"github.com/sprhawk/pyslm/geometry"
)

var (
	configVal   string
	boundaryVal string
	layerVal    int
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run one slice boundary through a hatch recipe",
	Long: `Run loads a recipe settings file and a boundary file, runs one layer
through the recipe, and reports the resulting Layer's contour and
hatch counts.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configVal)
		check(err)

		h, err := config.Build(cfg)
		check(err)

		boundary, err := loadBoundary(boundaryVal)
		check(err)

		layer := h.Hatch(boundary, layerVal)

		fmt.Printf("layer %d: %d contours, %d hatch records\n",
			layer.LayerIndex, len(layer.Contours()), len(layer.Hatches()))
		for _, hg := range layer.Hatches() {
			fmt.Printf("  hatch record: %d points (%d segments)\n", len(hg.Coords), len(hg.Coords)/2)
		}
	},
}

func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&configVal, "config", "hatchgen.yml", "recipe settings file")
	runCmd.Flags().StringVar(&boundaryVal, "boundary", "", "boundary geometry file, JSON rings of [x,y] pairs (required)")
	runCmd.Flags().IntVar(&layerVal, "layer", 0, "layer index, used to rotate the hatch angle")
}

func check(err error) {
	if err != nil {
		fmt.Println("error,", err)
		panic(err)
	}
}

// loadBoundary reads a boundary file: a JSON array of rings, each a
// JSON array of [x, y] pairs, the outer ring first followed by any
// holes. This file format is a CLI-only convenience; the core library
// has no file-format dependency (spec.md §6).
func loadBoundary(path string) (geometry.PolygonRegion, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw [][][2]float64
	if err := json.Unmarshal(buf, &raw); err != nil {
		return nil, err
	}
	region := make(geometry.PolygonRegion, len(raw))
	for i, ring := range raw {
		poly := make(geometry.Polyline, len(ring))
		for j, pt := range ring {
			poly[j] = geometry.Point2{X: pt[0], Y: pt[1]}
		}
		region[i] = poly
	}
	return region, nil
}

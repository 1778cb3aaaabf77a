package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hatchgen",
	Short: "generate L-PBF contour and hatch scan vectors for a slice",
	Long: `hatchgen loads a hatch recipe (YAML build settings) and a polygon
boundary file, runs one layer through the recipe, and reports the
resulting Layer's contour and hatch counts.`,
}

// Execute adds all child commands to RootCmd and executes it. Called
// once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprhawk/pyslm/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a recipe settings file",
	Long: `Create a hatch recipe settings file in YAML format, prefilled with
default values.

If FILE is not provided, 'hatchgen.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "hatchgen.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		if err := config.Save(path, config.Default()); err != nil {
			fmt.Println("error,", err)
			return
		}
		fmt.Printf("recipe settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}

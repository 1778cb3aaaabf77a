package main

import "github.com/sprhawk/pyslm/cmd/hatchgen/cmd"

func main() {
	cmd.Execute()
}

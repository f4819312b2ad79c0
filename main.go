package main

import (
	"os"

	"github.com/solvio/solvio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

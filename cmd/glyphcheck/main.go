// Package main is the entry point for the glyphcheck CLI.
package main

import (
	"os"

	"github.com/f3rmion/glyphcheck/cmd/glyphcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

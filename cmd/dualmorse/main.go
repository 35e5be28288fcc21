// Package main is the entry point for the dualmorse CLI.
package main

import (
	"os"

	"github.com/f3rmion/dualmorse/cmd/dualmorse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

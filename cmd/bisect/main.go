// Package main provides the entry point for the bisect CLI.
package main

import (
	"os"

	"github.com/hupe1980/bisect/cmd/bisect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

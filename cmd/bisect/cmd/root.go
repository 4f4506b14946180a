// Package cmd provides the CLI commands for bisect.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var debugMode bool

// NewRootCmd creates the root command for the bisect CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bisect",
		Short: "Probe-capped search over sorted key sets",
		Long: `bisect demonstrates membership search over sorted key sets.

It contrasts bisection search, which converges in O(log n) midpoint
comparisons, with a linear membership scan that may need up to n.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.AddCommand(newCompareCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func logLevel() slog.Level {
	if debugMode {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

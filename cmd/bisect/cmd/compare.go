package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bisect"
)

// compareOptions holds CLI flags for compare.
type compareOptions struct {
	size   int
	target int
	budget int
	scan   bool
}

func newCompareCmd() *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare bisection probe counts against a linear scan",
		Long: `Builds the key set 1..N, looks up a target with iterative and
recursive bisection, and reports the number of key comparisons each
strategy spent.

Examples:
  bisect compare --size 10000000 --target 9999999
  bisect compare --size 10000000 --target 9999999 --scan
  bisect compare --size 1000 --target 2000 --budget 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", 10_000_000, "Number of keys in the set (1..N)")
	cmd.Flags().IntVarP(&opts.target, "target", "t", 9_999_999, "Key to look up")
	cmd.Flags().IntVarP(&opts.budget, "budget", "b", bisect.DefaultProbeBudget, "Probe budget per search")
	cmd.Flags().BoolVar(&opts.scan, "scan", false, "Also run the linear scan baseline")

	return cmd
}

func runCompare(ctx context.Context, cmd *cobra.Command, opts compareOptions) error {
	if opts.size < 1 {
		return fmt.Errorf("size must be at least 1, got %d", opts.size)
	}

	keys := make([]int, opts.size)
	for i := range keys {
		keys[i] = i + 1
	}

	metrics := &bisect.BasicMetricsCollector{}

	set, err := bisect.New(keys,
		bisect.WithProbeBudget(opts.budget),
		bisect.WithMetricsCollector(metrics),
		bisect.WithLogLevel(logLevel()),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "keys 1..%d, target %d, probe budget %d\n", opts.size, opts.target, opts.budget)

	report := func(name string, probes int64, v int, elapsed time.Duration, err error) {
		switch {
		case err == nil:
			fmt.Fprintf(out, "%-10s  found %d after %d probes in %s\n", name, v, probes, elapsed)
		case errors.Is(err, bisect.ErrNotFound):
			fmt.Fprintf(out, "%-10s  miss after %d probes in %s (%v)\n", name, probes, elapsed, err)
		default:
			fmt.Fprintf(out, "%-10s  failed: %v\n", name, err)
		}
	}

	var searchProbes int64

	start := time.Now()
	v, err := set.Find(ctx, opts.target)
	if err != nil && !errors.Is(err, bisect.ErrNotFound) {
		return err
	}
	probes := metrics.GetStats().SearchProbes - searchProbes
	searchProbes += probes
	report("iterative", probes, v, time.Since(start), err)

	start = time.Now()
	v, err = set.FindRecursive(ctx, opts.target)
	if err != nil && !errors.Is(err, bisect.ErrNotFound) {
		return err
	}
	probes = metrics.GetStats().SearchProbes - searchProbes
	searchProbes += probes
	report("recursive", probes, v, time.Since(start), err)

	if opts.scan {
		start = time.Now()
		v, err = set.Scan(ctx, opts.target)
		if err != nil && !errors.Is(err, bisect.ErrNotFound) {
			return err
		}
		report("scan", metrics.GetStats().ScanProbes, v, time.Since(start), err)
	}

	return nil
}

// Package bisect provides probe-capped membership search over immutable
// sorted key sets.
//
// # Quick Start
//
//	ctx := context.Background()
//	set, _ := bisect.New([]int{2, 3, 5, 7, 11, 13})
//
//	v, err := set.Find(ctx, 11)          // bisection, O(log n) probes
//	ok, _ := set.Contains(ctx, 4)        // false
//
// # Search Strategies
//
// Every Set supports three lookup strategies over the same keys:
//
//   - Find: iterative bisection, O(log n) probes, bounded stack
//   - FindRecursive: recursive bisection, identical outcomes, call depth
//     grows with log2(n)
//   - Scan: linear membership baseline, O(n) probes
//
// The iterative and recursive forms implement the same decision procedure
// and are interchangeable; Find is the one to use at scale.
//
// # Probe Budget
//
// Each search spends at most a configured number of midpoint comparisons
// (DefaultProbeBudget when unset). Exceeding the budget is a defined miss
// reported as *ErrExhausted, which unwraps to ErrNotFound:
//
//	set, _ := bisect.New(keys, bisect.WithProbeBudget(4))
//	_, err := set.Find(ctx, 999)
//	var ex *bisect.ErrExhausted
//	if errors.As(err, &ex) {
//	    fmt.Println(ex.Probes, ex.Budget)
//	}
//
// # Observability
//
// Probe counts and latencies flow through a MetricsCollector, and lookups
// emit structured logs via a slog-backed Logger:
//
//	metrics := &bisect.BasicMetricsCollector{}
//	set, _ := bisect.New(keys,
//	    bisect.WithMetricsCollector(metrics),
//	    bisect.WithLogLevel(slog.LevelDebug),
//	)
package bisect

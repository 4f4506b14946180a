package bisect

import (
	"cmp"
	"context"
	"errors"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bisect/search"
)

// Set is an immutable sorted set of unique keys supporting membership
// lookups with observable probe counts.
//
// A Set is safe for concurrent use: it is never mutated after construction
// and every lookup carries its own range state.
type Set[T cmp.Ordered] struct {
	keys    []T
	budget  int
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Set from keys, which must be in strictly ascending order.
// The slice is copied, so later mutation by the caller cannot corrupt
// searches.
func New[T cmp.Ordered](keys []T, optFns ...Option) (*Set[T], error) {
	o := applyOptions(optFns)

	if o.probeBudget <= 0 {
		return nil, ErrInvalidProbeBudget
	}

	ks := slices.Clone(keys)
	for i := 1; i < len(ks); i++ {
		if ks[i] <= ks[i-1] {
			return nil, ErrUnsorted
		}
	}

	s := &Set[T]{
		keys:    ks,
		budget:  o.probeBudget,
		logger:  o.logger.WithSize(len(ks)).WithBudget(o.probeBudget),
		metrics: o.metricsCollector,
	}

	s.logger.Debug("set created")

	return s, nil
}

// Len returns the number of keys in the set.
func (s *Set[T]) Len() int { return len(s.keys) }

// Keys returns a copy of the keys in ascending order.
func (s *Set[T]) Keys() []T { return slices.Clone(s.keys) }

// Find locates target by iterative bisection, spending at most the
// configured probe budget. It returns the stored key on a hit, ErrNotFound
// on a proven miss, and *ErrExhausted when the budget ran out first.
func (s *Set[T]) Find(ctx context.Context, target T) (T, error) {
	return s.find(ctx, target, search.Iterative)
}

// FindRecursive locates target by recursive bisection. It returns exactly
// what Find returns for the same set and target; it exists because the
// recursive realization is sometimes the clearer one to read, at the cost
// of call depth growing with log2(n).
func (s *Set[T]) FindRecursive(ctx context.Context, target T) (T, error) {
	return s.find(ctx, target, search.Recursive)
}

func (s *Set[T]) find(ctx context.Context, target T, core func(n, budget int, probe search.Probe) search.Outcome) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	start := time.Now()
	out := core(len(s.keys), s.budget, s.probe(target))
	err := s.outcomeErr(out)

	s.metrics.RecordSearch(out.Probes, time.Since(start), err)
	s.logger.LogSearch(ctx, out.Probes, err)

	if err != nil {
		return zero, err
	}

	return s.keys[out.Index], nil
}

// Scan locates target by a linear membership scan. It is the O(n) baseline
// the bisection forms are measured against; probe counts are recorded
// through the same collector so the two are directly comparable.
func (s *Set[T]) Scan(ctx context.Context, target T) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	start := time.Now()
	out := search.Linear(len(s.keys), s.probe(target))

	var err error
	if !out.Found {
		err = ErrNotFound
	}

	s.metrics.RecordScan(out.Probes, time.Since(start), err)
	s.logger.LogScan(ctx, out.Probes, err)

	if err != nil {
		return zero, err
	}

	return s.keys[out.Index], nil
}

// Contains reports whether target is in the set. An exhausted search counts
// as absent; only context errors are surfaced.
func (s *Set[T]) Contains(ctx context.Context, target T) (bool, error) {
	_, err := s.Find(ctx, target)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// BatchResult is the per-target outcome of a FindBatch lookup.
type BatchResult[T cmp.Ordered] struct {
	Target T
	Value  T
	Err    error
}

// FindBatch looks up each target independently, running the individual
// searches concurrently. Results are index-aligned with targets; a miss is
// reported in the corresponding BatchResult, not as a batch failure. The
// returned error is non-nil only when the context is canceled.
func (s *Set[T]) FindBatch(ctx context.Context, targets []T) ([]BatchResult[T], error) {
	results := make([]BatchResult[T], len(targets))

	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, target := range targets {
		g.Go(func() error {
			v, err := s.Find(gctx, target)
			results[i] = BatchResult[T]{Target: target, Value: v, Err: err}
			if err != nil && !errors.Is(err, ErrNotFound) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	missed := 0
	for _, r := range results {
		if r.Err != nil {
			missed++
		}
	}

	s.metrics.RecordBatch(len(targets), missed, time.Since(start))
	s.logger.LogBatch(ctx, len(targets), missed)

	return results, nil
}

func (s *Set[T]) probe(target T) search.Probe {
	return func(i int) search.Ordering {
		return search.Ordering(cmp.Compare(s.keys[i], target))
	}
}

func (s *Set[T]) outcomeErr(out search.Outcome) error {
	switch {
	case out.Found:
		return nil
	case out.Exhausted:
		return &ErrExhausted{Probes: out.Probes, Budget: s.budget}
	default:
		return ErrNotFound
	}
}

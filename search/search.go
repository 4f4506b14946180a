// Package search implements probe-capped membership search cores over an
// index space [0, n).
//
// The cores are comparator-driven: they never see the element type, only a
// Probe callback that orders the element at a given index against the
// target. This keeps them usable for any sorted layout, including ranges
// that are computed rather than stored.
//
// Two bisection realizations are provided, an iterative one and a recursive
// one. They implement the same decision procedure and return identical
// outcomes for identical inputs; prefer Iterative at scale, since Recursive
// grows the call stack with log2(n). Linear is the O(n) baseline the
// bisection forms are measured against.
package search

// Ordering is the result of comparing an element against the search target.
type Ordering int

const (
	// Less means the element orders before the target.
	Less Ordering = -1
	// Equal means the element matches the target.
	Equal Ordering = 0
	// Greater means the element orders after the target.
	Greater Ordering = 1
)

// Probe compares the element at index i against the search target.
//
// A Probe must be consistent with some strict ascending order over [0, n);
// the bisection cores rely on that to discard halves of the range.
type Probe func(i int) Ordering

// Outcome reports where a search ended and how much work it spent.
type Outcome struct {
	// Index is the match position when Found, otherwise the insertion
	// point the search had narrowed to when it stopped.
	Index int

	// Probes is the number of Probe invocations performed.
	Probes int

	// Found reports whether the target was located.
	Found bool

	// Exhausted reports that the probe budget was consumed before the
	// candidate range emptied. Exhausted implies !Found.
	Exhausted bool
}

// Iterative performs bisection search over [0, n) with an explicit loop and
// mutable range state.
//
// The candidate range is half-open [lo, hi). Each step probes the midpoint:
// Less discards the lower half including the midpoint, Greater discards the
// upper half, Equal terminates. The search stops when the range empties or
// budget probes have been spent.
func Iterative(n, budget int, probe Probe) Outcome {
	lo, hi := 0, n
	probes := 0
	for lo < hi {
		if probes >= budget {
			return Outcome{Index: lo, Probes: probes, Exhausted: true}
		}
		mid := lo + (hi-lo)/2
		probes++
		switch probe(mid) {
		case Less:
			lo = mid + 1
		case Greater:
			hi = mid
		default:
			return Outcome{Index: mid, Probes: probes, Found: true}
		}
	}
	return Outcome{Index: lo, Probes: probes}
}

// Recursive performs bisection search over [0, n) by passing the shrinking
// range and the running probe count through self-invocations.
//
// Recursive returns an Outcome identical to Iterative for every
// (n, budget, probe). Call depth grows with log2(n), which is the reason
// Iterative is preferred for large ranges.
func Recursive(n, budget int, probe Probe) Outcome {
	return recurse(0, n, budget, 0, probe)
}

func recurse(lo, hi, budget, probes int, probe Probe) Outcome {
	if lo >= hi {
		return Outcome{Index: lo, Probes: probes}
	}
	if probes >= budget {
		return Outcome{Index: lo, Probes: probes, Exhausted: true}
	}
	mid := lo + (hi-lo)/2
	switch probe(mid) {
	case Less:
		return recurse(mid+1, hi, budget, probes+1, probe)
	case Greater:
		return recurse(lo, mid, budget, probes+1, probe)
	default:
		return Outcome{Index: mid, Probes: probes + 1, Found: true}
	}
}

// Linear performs the O(n) membership baseline: it probes indexes in
// ascending order until a match or until an element orders after the
// target, which on sorted input proves the target absent.
func Linear(n int, probe Probe) Outcome {
	for i := 0; i < n; i++ {
		switch probe(i) {
		case Equal:
			return Outcome{Index: i, Probes: i + 1, Found: true}
		case Greater:
			return Outcome{Index: i, Probes: i + 1}
		}
	}
	return Outcome{Index: n, Probes: n}
}

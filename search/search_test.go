package search

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probeFor(keys []int, target int) Probe {
	return func(i int) Ordering {
		switch {
		case keys[i] < target:
			return Less
		case keys[i] > target:
			return Greater
		default:
			return Equal
		}
	}
}

// rangeProbe orders the computed range lo..lo+n-1 against target without
// materializing it.
func rangeProbe(lo, target int) Probe {
	return func(i int) Ordering {
		switch {
		case lo+i < target:
			return Less
		case lo+i > target:
			return Greater
		default:
			return Equal
		}
	}
}

func TestBisection(t *testing.T) {
	keys := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

	tests := []struct {
		name   string
		target int
		index  int
		found  bool
	}{
		{"first element", 2, 0, true},
		{"last element", 29, 9, true},
		{"middle element", 11, 4, true},
		{"below minimum", 1, 0, false},
		{"above maximum", 30, 10, false},
		{"gap miss", 4, 2, false},
		{"gap miss high", 20, 8, false},
	}

	cores := map[string]func(n, budget int, probe Probe) Outcome{
		"iterative": Iterative,
		"recursive": Recursive,
	}

	for coreName, core := range cores {
		t.Run(coreName, func(t *testing.T) {
			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					out := core(len(keys), 64, probeFor(keys, tt.target))

					assert.Equal(t, tt.found, out.Found)
					assert.Equal(t, tt.index, out.Index)
					assert.False(t, out.Exhausted)
					assert.Positive(t, out.Probes)
				})
			}
		})
	}
}

func TestBisectionEmptyRange(t *testing.T) {
	probe := func(int) Ordering {
		t.Fatal("empty range must not be probed")
		return Equal
	}

	for _, core := range []func(n, budget int, probe Probe) Outcome{Iterative, Recursive} {
		out := core(0, 64, probe)

		assert.False(t, out.Found)
		assert.False(t, out.Exhausted)
		assert.Zero(t, out.Probes)
		assert.Zero(t, out.Index)
	}
}

func TestBisectionExhaustion(t *testing.T) {
	t.Run("budget smaller than range", func(t *testing.T) {
		out := Iterative(1<<20, 3, rangeProbe(1, 0))

		assert.False(t, out.Found)
		assert.True(t, out.Exhausted)
		assert.Equal(t, 3, out.Probes)
	})

	t.Run("zero budget", func(t *testing.T) {
		out := Iterative(8, 0, rangeProbe(1, 4))

		assert.False(t, out.Found)
		assert.True(t, out.Exhausted)
		assert.Zero(t, out.Probes)
	})

	t.Run("recursive matches", func(t *testing.T) {
		it := Iterative(1<<20, 3, rangeProbe(1, 0))
		rec := Recursive(1<<20, 3, rangeProbe(1, 0))

		assert.Equal(t, it, rec)
	})
}

// The iterative and recursive realizations must be indistinguishable,
// outcome for outcome, over randomized inputs.
func TestEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(41))

	for range 100 {
		n := rng.Intn(200) + 1
		keys := make([]int, n)
		next := rng.Intn(10)
		for i := range keys {
			keys[i] = next
			next += rng.Intn(10) + 1
		}

		// Mix hits and misses, including out-of-range targets.
		target := keys[rng.Intn(n)]
		if rng.Intn(2) == 0 {
			target = rng.Intn(next+10) - 5
		}
		budget := rng.Intn(12) + 1

		it := Iterative(n, budget, probeFor(keys, target))
		rec := Recursive(n, budget, probeFor(keys, target))

		require.Equal(t, it, rec, "n=%d target=%d budget=%d", n, target, budget)
	}
}

// Worst-case probe counts must track log2(n): at most floor(log2 n)+1, and
// strictly below n once n exceeds 4.
func TestProbeGrowth(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8, 64, 1000, 1 << 10, 1 << 20} {
		maxProbes := bits.Len(uint(n))

		worst := 0
		for _, target := range []int{0, 1, n, n + 1} {
			out := Iterative(n, n+1, rangeProbe(1, target))
			if out.Probes > worst {
				worst = out.Probes
			}
			require.False(t, out.Exhausted)
		}

		assert.LessOrEqual(t, worst, maxProbes, "n=%d", n)
		if n > 4 {
			assert.Less(t, worst, n, "n=%d", n)
		}
	}
}

func TestLargeRange(t *testing.T) {
	const n = 10_000_000

	out := Iterative(n, 64, rangeProbe(1, 9_999_999))

	require.True(t, out.Found)
	assert.Equal(t, 9_999_998, out.Index)
	assert.LessOrEqual(t, out.Probes, 24)
}

func TestLinear(t *testing.T) {
	keys := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

	t.Run("hit", func(t *testing.T) {
		out := Linear(len(keys), probeFor(keys, 11))

		require.True(t, out.Found)
		assert.Equal(t, 4, out.Index)
		assert.Equal(t, 5, out.Probes)
	})

	t.Run("miss stops at first greater element", func(t *testing.T) {
		out := Linear(len(keys), probeFor(keys, 4))

		assert.False(t, out.Found)
		assert.Equal(t, 2, out.Index)
		assert.Equal(t, 3, out.Probes)
	})

	t.Run("miss above maximum costs n probes", func(t *testing.T) {
		out := Linear(len(keys), probeFor(keys, 100))

		assert.False(t, out.Found)
		assert.Equal(t, len(keys), out.Probes)
	})

	t.Run("empty", func(t *testing.T) {
		out := Linear(0, probeFor(keys, 2))

		assert.False(t, out.Found)
		assert.Zero(t, out.Probes)
	})

	t.Run("worst case dwarfs bisection", func(t *testing.T) {
		const n = 10_000_000

		lin := Linear(n, rangeProbe(1, 9_999_999))
		bi := Iterative(n, 64, rangeProbe(1, 9_999_999))

		require.True(t, lin.Found)
		require.True(t, bi.Found)
		assert.Equal(t, 9_999_999, lin.Probes)
		assert.Less(t, bi.Probes, lin.Probes)
	})
}

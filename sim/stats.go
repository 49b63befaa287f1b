package sim

import (
	"math"
	"sort"
)

// percentile interpolates linearly between the two nearest ranks of a
// sorted sample. pct is in [0, 100].
func percentile(sorted []float64, pct float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	rank := pct / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// percentiles3 returns the p5/p50/p95 of xs without mutating it.
func percentiles3(xs []float64) (p5, p50, p95 float64) {
	if len(xs) == 0 {
		return 0, 0, 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return percentile(sorted, 5), percentile(sorted, 50), percentile(sorted, 95)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// probAtLeast returns the empirical fraction of xs at or above threshold.
func probAtLeast(xs []float64, threshold float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	count := 0
	for _, x := range xs {
		if x >= threshold {
			count++
		}
	}
	return float64(count) / float64(len(xs))
}

// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package aggregate provides the numeric aggregation the
// CollectObservation round uses to turn per-participant price
// observations into a single estimate (spec.md §4.3, §6).
package aggregate

import "sort"

// Median returns the median of values. On an even-length input it
// averages the two central values, matching spec.md §8 scenario 5
// (four observations, estimate = average of the middle two). Median
// does not mutate values.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

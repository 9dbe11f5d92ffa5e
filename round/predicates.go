// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"github.com/luxfi/priceround/internal/orderedmap"
	"github.com/luxfi/priceround/priceaddr"
	"github.com/luxfi/priceround/state"
)

// admit applies the common admission rule from spec.md §4.1: a
// payload from sender is admitted into ledger iff sender is a
// participant and has not already admitted a value. It reports
// whether the payload was admitted; admission is idempotent w.r.t.
// the ledger (a second call with the same sender is a silent no-op).
func admit[V any](st state.PeriodState, ledger *orderedmap.Map[priceaddr.Address, V], sender priceaddr.Address, value V) bool {
	if !st.IsParticipant(sender) {
		return false
	}
	return ledger.Put(sender, value)
}

// countThreshold is the threshold predicate for collection-only rounds
// (CollectObservation, CollectSignature): the cardinality of the
// ledger must reach the given count.
func countThreshold[V any](ledger *orderedmap.Map[priceaddr.Address, V], threshold uint32) bool {
	return uint32(ledger.Len()) >= threshold
}

// plurality scans ledger in insertion order, projecting each admitted
// value to its "voted value" via project, and returns the value with
// the highest running count together with that count. Ties are broken
// by first-seen: a later value only displaces the incumbent winner by
// strictly exceeding its count, which is exactly "iterate in insertion
// order, remember the first value to attain the running maximum"
// (spec.md §4.4). reached reports whether the winner's count has
// crossed threshold.
func plurality[V any, K comparable](ledger *orderedmap.Map[priceaddr.Address, V], project func(V) K, threshold uint32) (winner K, count int, reached bool) {
	counts := make(map[K]int)
	maxCount := 0
	var best K
	ledger.Iterate(func(_ priceaddr.Address, v V) bool {
		k := project(v)
		counts[k]++
		if counts[k] > maxCount {
			maxCount = counts[k]
			best = k
		}
		return true
	})
	return best, maxCount, maxCount >= int(threshold)
}

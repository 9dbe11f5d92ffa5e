// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package orderedmap provides an insertion-order-preserving map, used
// by every round's per-sender admission ledger. Go's native map
// iteration order is randomized, which would make the plurality
// tie-break in the round package's plurality helper non-deterministic
// across replicas;
// this type fixes the order to "first admitted, first iterated".
//
// Adapted from the consensus engine's utils/linked.Hashmap: the
// doubly-linked list backing is dropped (nothing here ever deletes an
// entry — period state is accumulate-only) in favor of a plain
// append-only key slice, and a Clone is added so a round's ledger can
// be captured into an immutable state.PeriodState without aliasing
// the round's own working copy.
package orderedmap

// Map is an insertion-order-preserving map from K to V.
type Map[K comparable, V any] struct {
	values map[K]V
	keys   []K
}

// New returns an empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		values: make(map[K]V),
	}
}

// Put inserts key/value if key is not already present. It reports
// whether the insertion happened; a second Put for the same key is a
// no-op, matching the admit-once contract every round enforces.
func (m *Map[K, V]) Put(key K, value V) bool {
	if _, exists := m.values[key]; exists {
		return false
	}
	m.values[key] = value
	m.keys = append(m.keys, key)
	return true
}

// Get returns the value for key, and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key has already been admitted.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of admitted entries.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Iterate calls f for every entry in insertion order, stopping early
// if f returns false.
func (m *Map[K, V]) Iterate(f func(K, V) bool) {
	for _, k := range m.keys {
		if !f(k, m.values[k]) {
			return
		}
	}
}

// Keys returns the admitted keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Clone returns an independent copy of m. Mutating the clone never
// affects m, which lets a round snapshot its working ledger into an
// immutable state.PeriodState while continuing to admit payloads
// against its own copy (defensive; rounds stop admitting once the
// driver transitions them, but the state's copy must not alias it).
func (m *Map[K, V]) Clone() *Map[K, V] {
	clone := &Map[K, V]{
		values: make(map[K]V, len(m.values)),
		keys:   make([]K, len(m.keys)),
	}
	copy(clone.keys, m.keys)
	for k, v := range m.values {
		clone.values[k] = v
	}
	return clone
}

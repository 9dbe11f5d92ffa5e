// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package estimateenc implements the bit-exact call-data encoding for
// most_voted_estimate: an 8-byte little-endian IEEE-754 double
// (spec.md §3, §6).
package estimateenc

import (
	"encoding/binary"
	"math"
)

// Encode returns the 8-byte little-endian IEEE-754 encoding of v.
func Encode(v float64) [8]byte {
	var out [8]byte
	binary.LittleEndian.PutUint64(out[:], math.Float64bits(v))
	return out
}

// Decode is the inverse of Encode.
func Decode(b [8]byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b[:]))
}

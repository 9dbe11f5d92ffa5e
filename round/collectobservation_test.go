// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
)

func TestCollectObservationMedianOfFour(t *testing.T) {
	require := require.New(t)

	st := registeredState("alice", "bob", "carol", "dave")
	p := params.New(4, 4)
	r := NewCollectObservation(st, p, nil)

	require.True(r.Apply(payload.Observation("alice", 10)))
	require.True(r.Apply(payload.Observation("bob", 20)))
	require.True(r.Apply(payload.Observation("carol", 30)))

	_, _, ok := r.EndBlock()
	require.False(ok)

	require.True(r.Apply(payload.Observation("dave", 40)))
	next, nextRound, ok := r.EndBlock()
	require.True(ok)
	require.Equal(IDEstimateConsensus, nextRound.ID())
	require.Equal(25.0, next.Estimate())
}

func TestCollectObservationAdmitOncePerSender(t *testing.T) {
	require := require.New(t)

	st := registeredState("alice", "bob")
	r := NewCollectObservation(st, params.New(2, 2), nil)

	require.True(r.Apply(payload.Observation("alice", 10)))
	require.False(r.Apply(payload.Observation("alice", 99)))
}

// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
)

func TestEstimateConsensusPluralityAndTransition(t *testing.T) {
	require := require.New(t)

	st := registeredState("alice", "bob", "carol")
	p := params.New(3, 2)
	r := NewEstimateConsensus(st, p, nil)

	require.True(r.Apply(payload.Estimate("alice", 25.0)))
	require.True(r.Apply(payload.Estimate("bob", 25.0)))
	require.True(r.Apply(payload.Estimate("carol", 99.0)))

	next, nextRound, ok := r.EndBlock()
	require.True(ok)
	require.Equal(IDTxHash, nextRound.ID())
	require.Equal(25.0, next.MostVotedEstimate())
}

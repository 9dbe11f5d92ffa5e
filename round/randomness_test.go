// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
)

func TestRandomnessDropsNonParticipant(t *testing.T) {
	require := require.New(t)

	st := registeredState("alice", "bob", "carol")
	r := NewRandomness(st, params.New(3, 2), nil)

	require.False(r.Apply(payload.Randomness("mallory", "0x01")))
}

func TestRandomnessPluralityAndTransition(t *testing.T) {
	require := require.New(t)

	st := registeredState("alice", "bob", "carol")
	r := NewRandomness(st, params.New(3, 2), nil)

	require.True(r.Apply(payload.Randomness("alice", "0x01")))
	require.True(r.Apply(payload.Randomness("bob", "0x01")))
	next, nextRound, ok := r.EndBlock()
	require.True(ok)
	require.Equal(IDSelectKeeperA, nextRound.ID())
	require.Equal("0x01", next.MostVotedRandomness())
}

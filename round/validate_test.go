// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
)

func TestValidatePositiveOutcomePersistsVotes(t *testing.T) {
	require := require.New(t)

	st := registeredState("alice", "bob", "carol")
	p := params.New(3, 2)
	r := NewValidate(st, p, nil, validateSafeConfig)

	require.True(r.Apply(payload.Validate("alice", true)))
	require.True(r.Apply(payload.Validate("bob", true)))

	next, nextRound, ok := r.EndBlock()
	require.True(ok)
	require.Equal(IDCollectObservation, nextRound.ID())
	require.Equal(2, next.ParticipantToVotes().Len())
}

func TestValidateNegativeOutcomeDoesNotPersistVotes(t *testing.T) {
	require := require.New(t)

	st := registeredState("alice", "bob", "carol")
	p := params.New(3, 2)
	r := NewValidate(st, p, nil, validateSafeConfig)

	require.True(r.Apply(payload.Validate("alice", false)))
	require.True(r.Apply(payload.Validate("bob", false)))

	next, nextRound, ok := r.EndBlock()
	require.True(ok)
	require.Equal(IDSelectKeeperA, nextRound.ID())
	require.Panics(func() { next.ParticipantToVotes() })
}

func TestValidateTransactionPositiveReachesConsensus(t *testing.T) {
	require := require.New(t)

	st := registeredState("alice", "bob")
	p := params.New(2, 2)
	r := NewValidate(st, p, nil, validateTransactionConfig)

	require.True(r.Apply(payload.Validate("alice", true)))
	require.True(r.Apply(payload.Validate("bob", true)))

	_, nextRound, ok := r.EndBlock()
	require.True(ok)
	require.Equal(IDConsensusReached, nextRound.ID())
}

func TestValidateTransactionNegativeReturnsToSelectKeeperB(t *testing.T) {
	require := require.New(t)

	st := registeredState("alice", "bob")
	p := params.New(2, 2)
	r := NewValidate(st, p, nil, validateTransactionConfig)

	require.True(r.Apply(payload.Validate("alice", false)))
	require.True(r.Apply(payload.Validate("bob", false)))

	_, nextRound, ok := r.EndBlock()
	require.True(ok)
	require.Equal(IDSelectKeeperB, nextRound.ID())
}

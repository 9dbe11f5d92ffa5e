// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
)

func TestTxHashPluralityAndTransition(t *testing.T) {
	require := require.New(t)

	st := registeredState("alice", "bob", "carol")
	p := params.New(3, 2)
	r := NewTxHash(st, p, nil)

	require.True(r.Apply(payload.TransactionHash("alice", "0xabc")))
	require.True(r.Apply(payload.TransactionHash("bob", "0xabc")))

	next, nextRound, ok := r.EndBlock()
	require.True(ok)
	require.Equal(IDCollectSignature, nextRound.ID())
	require.Equal("0xabc", next.MostVotedTxHash())
}

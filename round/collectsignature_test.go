// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
)

func TestCollectSignatureStoresRawBytes(t *testing.T) {
	require := require.New(t)

	st := registeredState("alice", "bob")
	p := params.New(2, 2)
	r := NewCollectSignature(st, p, nil)

	require.True(r.Apply(payload.Signature("alice", []byte{0xde, 0xad})))
	require.True(r.Apply(payload.Signature("bob", []byte{0xbe, 0xef})))

	next, nextRound, ok := r.EndBlock()
	require.True(ok)
	require.Equal(IDFinalization, nextRound.ID())

	sig, found := next.ParticipantToSignature().Get("alice")
	require.True(found)
	require.Equal([]byte{0xde, 0xad}, sig)
}

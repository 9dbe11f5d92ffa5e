// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
	"github.com/luxfi/priceround/priceaddr"
)

func TestDeploySafeAdmitsOnlyKeeper(t *testing.T) {
	require := require.New(t)

	members := []priceaddr.Address{"alice", "bob", "carol"}
	p := params.New(3, 2)
	st := stateWithKeeper(p, members, "bob")

	r := NewDeploySafe(st, p, nil)
	require.False(r.Apply(payload.DeploySafe("alice", "0xsafe")))
	require.True(r.Apply(payload.DeploySafe("bob", "0xsafe")))

	// A second payload, even from the keeper, is dropped.
	require.False(r.Apply(payload.DeploySafe("bob", "0xother")))

	next, nextRound, ok := r.EndBlock()
	require.True(ok)
	require.Equal(IDValidateSafe, nextRound.ID())
	require.Equal(priceaddr.Address("0xsafe"), next.SafeContractAddress())
}

func TestDeploySafeNotReadyBeforeKeeperSubmits(t *testing.T) {
	require := require.New(t)

	members := []priceaddr.Address{"alice", "bob"}
	p := params.New(2, 2)
	st := stateWithKeeper(p, members, "bob")

	r := NewDeploySafe(st, p, nil)
	_, _, ok := r.EndBlock()
	require.False(ok)
}

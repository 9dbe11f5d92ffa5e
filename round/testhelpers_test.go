// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
	"github.com/luxfi/priceround/priceaddr"
	"github.com/luxfi/priceround/state"
)

// stateWithKeeper advances a fresh registration through randomness and
// select_keeper_a so tests of keeper-only rounds (deploy_safe,
// finalization) can start from a state with most_voted_keeper_address
// already populated.
func stateWithKeeper(p params.Parameters, members []priceaddr.Address, keeper priceaddr.Address) state.PeriodState {
	reg := NewRegistration(state.New(), p, nil)
	for _, m := range members {
		reg.Apply(payload.Registration(m))
	}
	st, next, _ := reg.EndBlock()

	r := next.(*Randomness)
	for _, m := range members {
		r.Apply(payload.Randomness(m, "0x01"))
	}
	st, next, _ = r.EndBlock()

	sk := next.(*SelectKeeper)
	for _, m := range members {
		sk.Apply(payload.SelectKeeper(m, keeper))
	}
	st, _, _ = sk.EndBlock()
	return st
}

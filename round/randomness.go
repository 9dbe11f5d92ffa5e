// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"github.com/luxfi/log"

	"github.com/luxfi/priceround/internal/orderedmap"
	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
	"github.com/luxfi/priceround/priceaddr"
	"github.com/luxfi/priceround/state"
)

var _ Round = (*Randomness)(nil)

// Randomness collects one hex-string randomness value per participant
// and commits the plurality winner as most_voted_randomness.
type Randomness struct {
	base
	ledger *orderedmap.Map[priceaddr.Address, string]
}

func NewRandomness(st state.PeriodState, p params.Parameters, logger log.Logger) *Randomness {
	return &Randomness{
		base:   newBase(st, p, logger),
		ledger: orderedmap.New[priceaddr.Address, string](),
	}
}

func (r *Randomness) ID() ID { return IDRandomness }

func (r *Randomness) Apply(p payload.Payload) bool {
	if p.Kind != payload.KindRandomness {
		return false
	}
	admitted := admit(r.state, r.ledger, p.Sender, p.RandomnessValue)
	if admitted {
		r.log.Debug("randomness admitted", "sender", string(p.Sender), "value", p.RandomnessValue)
	} else {
		r.log.Warn("randomness dropped", "sender", string(p.Sender))
	}
	return admitted
}

func (r *Randomness) EndBlock() (state.PeriodState, Round, bool) {
	winner, _, reached := plurality(r.ledger, identity[string], r.params.ConsensusThreshold())
	if !reached {
		return state.PeriodState{}, nil, false
	}
	next := r.state.Update(state.Patch{
		ParticipantToRandomness: r.ledger,
		MostVotedRandomness:     &winner,
	})
	r.log.Info("round transition", "from", string(IDRandomness), "to", string(IDSelectKeeperA), "winner", winner)
	return next, NewSelectKeeper(next, r.params, r.log, selectKeeperAConfig), true
}

func identity[T any](v T) T { return v }

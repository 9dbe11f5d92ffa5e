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

var _ Round = (*EstimateConsensus)(nil)

// EstimateConsensus collects one estimate vote per participant and
// commits the plurality winner as most_voted_estimate.
type EstimateConsensus struct {
	base
	ledger *orderedmap.Map[priceaddr.Address, float64]
}

func NewEstimateConsensus(st state.PeriodState, p params.Parameters, logger log.Logger) *EstimateConsensus {
	return &EstimateConsensus{
		base:   newBase(st, p, logger),
		ledger: orderedmap.New[priceaddr.Address, float64](),
	}
}

func (r *EstimateConsensus) ID() ID { return IDEstimateConsensus }

func (r *EstimateConsensus) Apply(p payload.Payload) bool {
	if p.Kind != payload.KindEstimate {
		return false
	}
	admitted := admit(r.state, r.ledger, p.Sender, p.Estimate)
	if admitted {
		r.log.Debug("estimate admitted", "sender", string(p.Sender), "value", p.Estimate)
	} else {
		r.log.Warn("estimate dropped", "sender", string(p.Sender))
	}
	return admitted
}

func (r *EstimateConsensus) EndBlock() (state.PeriodState, Round, bool) {
	winner, _, reached := plurality(r.ledger, identity[float64], r.params.ConsensusThreshold())
	if !reached {
		return state.PeriodState{}, nil, false
	}
	next := r.state.Update(state.Patch{
		ParticipantToEstimate: r.ledger,
		MostVotedEstimate:     &winner,
	})
	r.log.Info("round transition", "from", string(IDEstimateConsensus), "to", string(IDTxHash), "estimate", winner)
	return next, NewTxHash(next, r.params, r.log), true
}

// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"github.com/luxfi/log"

	"github.com/luxfi/priceround/aggregate"
	"github.com/luxfi/priceround/internal/orderedmap"
	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
	"github.com/luxfi/priceround/priceaddr"
	"github.com/luxfi/priceround/state"
)

var _ Round = (*CollectObservation)(nil)

// CollectObservation gathers one price observation per participant
// and, once enough have arrived, computes the aggregate estimate as
// their median (spec.md §4.3, §9).
type CollectObservation struct {
	base
	ledger *orderedmap.Map[priceaddr.Address, float64]
}

func NewCollectObservation(st state.PeriodState, p params.Parameters, logger log.Logger) *CollectObservation {
	return &CollectObservation{
		base:   newBase(st, p, logger),
		ledger: orderedmap.New[priceaddr.Address, float64](),
	}
}

func (r *CollectObservation) ID() ID { return IDCollectObservation }

func (r *CollectObservation) Apply(p payload.Payload) bool {
	if p.Kind != payload.KindObservation {
		return false
	}
	admitted := admit(r.state, r.ledger, p.Sender, p.Observation)
	if admitted {
		r.log.Debug("observation admitted", "sender", string(p.Sender), "value", p.Observation)
	} else {
		r.log.Warn("observation dropped", "sender", string(p.Sender))
	}
	return admitted
}

func (r *CollectObservation) EndBlock() (state.PeriodState, Round, bool) {
	if !countThreshold(r.ledger, r.params.ConsensusThreshold()) {
		return state.PeriodState{}, nil, false
	}
	values := make([]float64, 0, r.ledger.Len())
	r.ledger.Iterate(func(_ priceaddr.Address, v float64) bool {
		values = append(values, v)
		return true
	})
	estimate := aggregate.Median(values)
	next := r.state.Update(state.Patch{
		ParticipantToObservations: r.ledger,
		Estimate:                  &estimate,
	})
	r.log.Info("round transition", "from", string(IDCollectObservation), "to", string(IDEstimateConsensus), "estimate", estimate)
	return next, NewEstimateConsensus(next, r.params, r.log), true
}

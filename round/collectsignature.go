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

var _ Round = (*CollectSignature)(nil)

// CollectSignature gathers one signature per participant over the
// agreed transaction hash; it writes raw signature bytes into period
// state, not the payload envelope.
type CollectSignature struct {
	base
	ledger *orderedmap.Map[priceaddr.Address, []byte]
}

func NewCollectSignature(st state.PeriodState, p params.Parameters, logger log.Logger) *CollectSignature {
	return &CollectSignature{
		base:   newBase(st, p, logger),
		ledger: orderedmap.New[priceaddr.Address, []byte](),
	}
}

func (r *CollectSignature) ID() ID { return IDCollectSignature }

func (r *CollectSignature) Apply(p payload.Payload) bool {
	if p.Kind != payload.KindSignature {
		return false
	}
	admitted := admit(r.state, r.ledger, p.Sender, p.Signature)
	if admitted {
		r.log.Debug("signature admitted", "sender", string(p.Sender))
	} else {
		r.log.Warn("signature dropped", "sender", string(p.Sender))
	}
	return admitted
}

func (r *CollectSignature) EndBlock() (state.PeriodState, Round, bool) {
	if !countThreshold(r.ledger, r.params.ConsensusThreshold()) {
		return state.PeriodState{}, nil, false
	}
	next := r.state.Update(state.Patch{ParticipantToSignature: r.ledger})
	r.log.Info("round transition", "from", string(IDCollectSignature), "to", string(IDFinalization))
	return next, NewFinalization(next, r.params, r.log), true
}

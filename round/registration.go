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

var _ Round = (*Registration)(nil)

// Registration is the entry round of a period: any address may
// register, unconditionally and idempotently. It closes once
// MaxParticipants distinct addresses have registered, freezing the
// committee for the rest of the period.
type Registration struct {
	base
	participants *orderedmap.Map[priceaddr.Address, struct{}]
}

// NewRegistration starts a fresh period. st is typically state.New().
func NewRegistration(st state.PeriodState, p params.Parameters, logger log.Logger) *Registration {
	return &Registration{
		base:         newBase(st, p, logger),
		participants: orderedmap.New[priceaddr.Address, struct{}](),
	}
}

func (r *Registration) ID() ID { return IDRegistration }

// Apply admits any registration payload unconditionally, including a
// repeat from the same sender (a no-op).
func (r *Registration) Apply(p payload.Payload) bool {
	if p.Kind != payload.KindRegistration {
		return false
	}
	if r.participants.Put(p.Sender, struct{}{}) {
		r.log.Debug("registration admitted", "sender", string(p.Sender), "count", r.participants.Len())
	}
	return true
}

func (r *Registration) EndBlock() (state.PeriodState, Round, bool) {
	if uint32(r.participants.Len()) != r.params.MaxParticipants() {
		return state.PeriodState{}, nil, false
	}
	next := r.state.Update(state.Patch{Participants: r.participants})
	r.log.Info("round transition", "from", string(IDRegistration), "to", string(IDRandomness))
	return next, NewRandomness(next, r.params, r.log), true
}

// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"github.com/luxfi/log"

	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
	"github.com/luxfi/priceround/priceaddr"
	"github.com/luxfi/priceround/state"
)

var _ Round = (*DeploySafe)(nil)

// DeploySafe is keeper-only: only the elected keeper's payload is
// admitted, and only the first one it sends. Everything else,
// including a second payload from the keeper itself, is dropped.
type DeploySafe struct {
	base
	safeAddress priceaddr.Address
	set         bool
}

func NewDeploySafe(st state.PeriodState, p params.Parameters, logger log.Logger) *DeploySafe {
	return &DeploySafe{base: newBase(st, p, logger)}
}

func (r *DeploySafe) ID() ID { return IDDeploySafe }

func (r *DeploySafe) Apply(p payload.Payload) bool {
	if p.Kind != payload.KindDeploySafe {
		return false
	}
	if r.set || !r.state.IsParticipant(p.Sender) || p.Sender != r.state.MostVotedKeeperAddress() {
		r.log.Warn("deploy_safe dropped", "sender", string(p.Sender))
		return false
	}
	r.safeAddress = p.SafeAddress
	r.set = true
	r.log.Debug("deploy_safe admitted", "sender", string(p.Sender), "safe", string(p.SafeAddress))
	return true
}

func (r *DeploySafe) EndBlock() (state.PeriodState, Round, bool) {
	if !r.set {
		return state.PeriodState{}, nil, false
	}
	next := r.state.Update(state.Patch{SafeContractAddress: &r.safeAddress})
	r.log.Info("round transition", "from", string(IDDeploySafe), "to", string(IDValidateSafe))
	return next, NewValidate(next, r.params, r.log, validateSafeConfig), true
}

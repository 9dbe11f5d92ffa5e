// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"github.com/luxfi/log"

	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
	"github.com/luxfi/priceround/state"
)

var _ Round = (*Finalization)(nil)

// Finalization is keeper-only, mirroring DeploySafe: only the elected
// keeper's submitted transaction hash is admitted, and only once.
type Finalization struct {
	base
	txHash string
	set    bool
}

func NewFinalization(st state.PeriodState, p params.Parameters, logger log.Logger) *Finalization {
	return &Finalization{base: newBase(st, p, logger)}
}

func (r *Finalization) ID() ID { return IDFinalization }

func (r *Finalization) Apply(p payload.Payload) bool {
	if p.Kind != payload.KindFinalizationTx {
		return false
	}
	if r.set || !r.state.IsParticipant(p.Sender) || p.Sender != r.state.MostVotedKeeperAddress() {
		r.log.Warn("finalization dropped", "sender", string(p.Sender))
		return false
	}
	r.txHash = p.TxHash
	r.set = true
	r.log.Debug("finalization admitted", "sender", string(p.Sender), "tx_hash", p.TxHash)
	return true
}

func (r *Finalization) EndBlock() (state.PeriodState, Round, bool) {
	if !r.set {
		return state.PeriodState{}, nil, false
	}
	txHash := r.txHash
	next := r.state.Update(state.Patch{FinalTxHash: &txHash})
	r.log.Info("round transition", "from", string(IDFinalization), "to", string(IDValidateTransaction))
	return next, NewValidate(next, r.params, r.log, validateTransactionConfig), true
}

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

var _ Round = (*TxHash)(nil)

// TxHash collects one candidate transaction hash per participant and
// commits the plurality winner as most_voted_tx_hash.
type TxHash struct {
	base
	ledger *orderedmap.Map[priceaddr.Address, string]
}

func NewTxHash(st state.PeriodState, p params.Parameters, logger log.Logger) *TxHash {
	return &TxHash{
		base:   newBase(st, p, logger),
		ledger: orderedmap.New[priceaddr.Address, string](),
	}
}

func (r *TxHash) ID() ID { return IDTxHash }

func (r *TxHash) Apply(p payload.Payload) bool {
	if p.Kind != payload.KindTransactionHash {
		return false
	}
	admitted := admit(r.state, r.ledger, p.Sender, p.TxHash)
	if admitted {
		r.log.Debug("tx_hash admitted", "sender", string(p.Sender), "value", p.TxHash)
	} else {
		r.log.Warn("tx_hash dropped", "sender", string(p.Sender))
	}
	return admitted
}

func (r *TxHash) EndBlock() (state.PeriodState, Round, bool) {
	winner, _, reached := plurality(r.ledger, identity[string], r.params.ConsensusThreshold())
	if !reached {
		return state.PeriodState{}, nil, false
	}
	next := r.state.Update(state.Patch{
		ParticipantToTxHash: r.ledger,
		MostVotedTxHash:     &winner,
	})
	r.log.Info("round transition", "from", string(IDTxHash), "to", string(IDCollectSignature), "tx_hash", winner)
	return next, NewCollectSignature(next, r.params, r.log), true
}

// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"github.com/luxfi/log"

	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
	"github.com/luxfi/priceround/state"
)

var _ Round = (*ConsensusReached)(nil)

// ConsensusReached is the terminal round: it admits nothing and never
// advances. Reaching it means the period is complete.
type ConsensusReached struct {
	base
}

func NewConsensusReached(st state.PeriodState, p params.Parameters, logger log.Logger) *ConsensusReached {
	return &ConsensusReached{base: newBase(st, p, logger)}
}

func (r *ConsensusReached) ID() ID { return IDConsensusReached }

func (r *ConsensusReached) Apply(payload.Payload) bool { return false }

func (r *ConsensusReached) EndBlock() (state.PeriodState, Round, bool) {
	return state.PeriodState{}, nil, false
}

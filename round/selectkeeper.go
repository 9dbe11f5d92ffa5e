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

var _ Round = (*SelectKeeper)(nil)

// selectKeeperConfig parameterizes SelectKeeper by its successor: per
// spec.md §9, the next round is data carried by the variant, not a
// distinct type. SelectKeeperA and SelectKeeperB are the same round
// behavior with a different next() value.
type selectKeeperConfig struct {
	id   ID
	next func(state.PeriodState, params.Parameters, log.Logger) Round
}

var selectKeeperAConfig = selectKeeperConfig{
	id:   IDSelectKeeperA,
	next: func(st state.PeriodState, p params.Parameters, l log.Logger) Round { return NewDeploySafe(st, p, l) },
}

var selectKeeperBConfig = selectKeeperConfig{
	id:   IDSelectKeeperB,
	next: func(st state.PeriodState, p params.Parameters, l log.Logger) Round { return NewFinalization(st, p, l) },
}

// SelectKeeper collects one keeper nomination per participant and
// commits the plurality winner as most_voted_keeper_address.
type SelectKeeper struct {
	base
	cfg    selectKeeperConfig
	ledger *orderedmap.Map[priceaddr.Address, priceaddr.Address]
}

func NewSelectKeeper(st state.PeriodState, p params.Parameters, logger log.Logger, cfg selectKeeperConfig) *SelectKeeper {
	return &SelectKeeper{
		base:   newBase(st, p, logger),
		cfg:    cfg,
		ledger: orderedmap.New[priceaddr.Address, priceaddr.Address](),
	}
}

func (r *SelectKeeper) ID() ID { return r.cfg.id }

func (r *SelectKeeper) Apply(p payload.Payload) bool {
	if p.Kind != payload.KindSelectKeeper {
		return false
	}
	admitted := admit(r.state, r.ledger, p.Sender, p.Keeper)
	if admitted {
		r.log.Debug("select_keeper admitted", "sender", string(p.Sender), "keeper", string(p.Keeper))
	} else {
		r.log.Warn("select_keeper dropped", "sender", string(p.Sender))
	}
	return admitted
}

func (r *SelectKeeper) EndBlock() (state.PeriodState, Round, bool) {
	winner, _, reached := plurality(r.ledger, identity[priceaddr.Address], r.params.ConsensusThreshold())
	if !reached {
		return state.PeriodState{}, nil, false
	}
	next := r.state.Update(state.Patch{
		ParticipantToSelection: r.ledger,
		MostVotedKeeperAddress: &winner,
	})
	nextRound := r.cfg.next(next, r.params, r.log)
	r.log.Info("round transition", "from", string(r.cfg.id), "to", string(nextRound.ID()), "keeper", string(winner))
	return next, nextRound, true
}

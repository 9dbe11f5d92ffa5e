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

var _ Round = (*Validate)(nil)

// validateConfig parameterizes Validate by its id and its two
// successors, per spec.md §9: positiveNext and negativeNext are data,
// not distinct types.
type validateConfig struct {
	id           ID
	positiveNext func(state.PeriodState, params.Parameters, log.Logger) Round
	negativeNext func(state.PeriodState, params.Parameters, log.Logger) Round
}

var validateSafeConfig = validateConfig{
	id:           IDValidateSafe,
	positiveNext: func(st state.PeriodState, p params.Parameters, l log.Logger) Round { return NewCollectObservation(st, p, l) },
	negativeNext: func(st state.PeriodState, p params.Parameters, l log.Logger) Round { return NewSelectKeeper(st, p, l, selectKeeperAConfig) },
}

var validateTransactionConfig = validateConfig{
	id:           IDValidateTransaction,
	positiveNext: func(st state.PeriodState, p params.Parameters, l log.Logger) Round { return NewConsensusReached(st, p, l) },
	negativeNext: func(st state.PeriodState, p params.Parameters, l log.Logger) Round { return NewSelectKeeper(st, p, l, selectKeeperBConfig) },
}

// Validate collects one boolean vote per participant and advances on
// whichever of the positive/negative thresholds is reached first. A
// positive outcome persists the votes into period state; a negative
// outcome does not (spec.md §4.3 — preserved verbatim from source,
// see spec.md §9's open question about whether this is a leak).
type Validate struct {
	base
	cfg    validateConfig
	ledger *orderedmap.Map[priceaddr.Address, bool]
}

func NewValidate(st state.PeriodState, p params.Parameters, logger log.Logger, cfg validateConfig) *Validate {
	return &Validate{
		base:   newBase(st, p, logger),
		cfg:    cfg,
		ledger: orderedmap.New[priceaddr.Address, bool](),
	}
}

func (r *Validate) ID() ID { return r.cfg.id }

func (r *Validate) Apply(p payload.Payload) bool {
	if p.Kind != payload.KindValidate {
		return false
	}
	admitted := admit(r.state, r.ledger, p.Sender, p.Vote)
	if admitted {
		r.log.Debug("validate admitted", "sender", string(p.Sender), "vote", p.Vote)
	} else {
		r.log.Warn("validate dropped", "sender", string(p.Sender))
	}
	return admitted
}

func (r *Validate) counts() (trueVotes, falseVotes int) {
	r.ledger.Iterate(func(_ priceaddr.Address, vote bool) bool {
		if vote {
			trueVotes++
		} else {
			falseVotes++
		}
		return true
	})
	return
}

func (r *Validate) EndBlock() (state.PeriodState, Round, bool) {
	threshold := int(r.params.ConsensusThreshold())
	trueVotes, falseVotes := r.counts()

	// Positive has precedence over negative if both somehow hold
	// (spec.md §4.3); an honest-majority BFT run never delivers both.
	if trueVotes >= threshold {
		next := r.state.Update(state.Patch{ParticipantToVotes: r.ledger})
		nextRound := r.cfg.positiveNext(next, r.params, r.log)
		r.log.Info("round transition", "from", string(r.cfg.id), "to", string(nextRound.ID()), "outcome", "positive")
		return next, nextRound, true
	}
	if falseVotes >= threshold {
		next := r.state.Update(state.Patch{})
		nextRound := r.cfg.negativeNext(next, r.params, r.log)
		r.log.Info("round transition", "from", string(r.cfg.id), "to", string(nextRound.ID()), "outcome", "negative")
		return next, nextRound, true
	}
	return state.PeriodState{}, nil, false
}

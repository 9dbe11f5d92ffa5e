// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package round implements the period state machine's round graph:
// the eleven concrete round types of spec.md §4.2, their admission
// rules, and their threshold predicates. Rounds are synchronous, pure
// functions of the payloads they have been fed plus the consensus
// parameters — no clocks, no randomness, no I/O (spec.md §5).
package round

import (
	"github.com/luxfi/log"

	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
	"github.com/luxfi/priceround/state"
)

// ID is a stable, wire-compatible round identifier, used for logs and
// for the driver's CurrentRoundID observability hook (spec.md §6).
type ID string

const (
	IDRegistration        ID = "registration"
	IDRandomness          ID = "randomness"
	IDSelectKeeperA       ID = "select_keeper_a"
	IDSelectKeeperB       ID = "select_keeper_b"
	IDDeploySafe          ID = "deploy_safe"
	IDValidateSafe        ID = "validate_safe"
	IDCollectObservation  ID = "collect_observation"
	IDEstimateConsensus   ID = "estimate_consensus"
	IDTxHash              ID = "tx_hash"
	IDCollectSignature    ID = "collect_signature"
	IDFinalization        ID = "finalization"
	IDValidateTransaction ID = "validate_transaction"
	IDConsensusReached    ID = "consensus_reached"
)

// Round is one node of the period state machine's transition graph.
// Apply is the admission rule: it admits or silently drops a payload
// (spec.md §7, class 1 failures are never surfaced as errors). EndBlock
// is the threshold predicate plus transition: it returns ok=false
// while the round's threshold has not been reached, and otherwise the
// period state produced by this round's writes together with the next
// round to install.
type Round interface {
	// ID returns this round's stable identifier.
	ID() ID
	// Apply admits payload p into the round's working ledger, and
	// reports whether it was admitted. The return value exists for
	// logging/metrics only — callers must never branch business logic
	// on it (spec.md §7).
	Apply(p payload.Payload) bool
	// EndBlock reports whether this round's threshold has been
	// reached, and if so returns the updated period state and the
	// round to transition to. It is idempotent before the threshold is
	// reached (spec.md §8) and must be called at most meaningfully
	// once per block boundary by the driver.
	EndBlock() (state.PeriodState, Round, bool)
}

// base holds what every concrete round needs: the period state as of
// round entry, the consensus parameters, and a logger. Concrete rounds
// embed base and add their own admission ledger.
type base struct {
	state  state.PeriodState
	params params.Parameters
	log    log.Logger
}

func newBase(st state.PeriodState, p params.Parameters, logger log.Logger) base {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	return base{state: st, params: p, log: logger}
}

// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package period drives a single period's round graph to completion:
// it owns the currently active round, feeds it payloads, and advances
// to the next round whenever EndBlock reports its threshold reached
// (spec.md §4.1, §6). It is the only component a host process needs
// to talk to; everything else in this module is pure and round-local.
package period

import (
	"github.com/luxfi/log"

	"github.com/luxfi/priceround/metrics"
	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
	"github.com/luxfi/priceround/round"
	"github.com/luxfi/priceround/state"
)

// Driver runs one period: a sequence of rounds chained by EndBlock
// transitions, starting at registration and ending at
// consensus_reached. A Driver is not safe for concurrent use; callers
// serialize Apply/EndBlock the way they serialize block execution.
type Driver struct {
	current round.Round
	state   state.PeriodState
	params  params.Parameters
	log     log.Logger
	metrics *metrics.Collector
}

// New starts a fresh period at the registration round.
func New(p params.Parameters, logger log.Logger, mc *metrics.Collector) *Driver {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	st := state.New()
	return newDriver(round.NewRegistration(st, p, logger), st, p, logger, mc)
}

// newDriver builds a Driver starting at an arbitrary round, letting
// tests install a mocked round.Round without going through
// Registration first.
func newDriver(current round.Round, st state.PeriodState, p params.Parameters, logger log.Logger, mc *metrics.Collector) *Driver {
	d := &Driver{
		current: current,
		state:   st,
		params:  p,
		log:     logger,
		metrics: mc,
	}
	d.metrics.SetCurrentRound(string(d.current.ID()))
	return d
}

// CurrentRoundID reports the id of the round currently accepting
// payloads.
func (d *Driver) CurrentRoundID() round.ID { return d.current.ID() }

// State returns the period state as of the last completed round
// transition. Fields the period has not yet reached remain unset and
// will panic on read (state.PeriodState's write-once discipline).
func (d *Driver) State() state.PeriodState { return d.state }

// Done reports whether the period has reached consensus_reached.
func (d *Driver) Done() bool { return d.current.ID() == round.IDConsensusReached }

// Apply feeds p to the current round and reports whether it was
// admitted. Admission never implies a transition; call EndBlock to
// check whether the round's threshold has been reached. Apply is a
// no-op once the period is Done.
func (d *Driver) Apply(p payload.Payload) bool {
	if d.Done() {
		return false
	}
	admitted := d.current.Apply(p)
	if admitted {
		d.metrics.ObservePayload(string(d.current.ID()), true, "")
	} else {
		d.metrics.ObservePayload(string(d.current.ID()), false, "not_admitted")
	}
	return admitted
}

// EndBlock checks the current round's threshold. If reached, it
// installs the next round and returns true; otherwise the driver is
// left unchanged and it returns false. Calling EndBlock before the
// threshold is reached, or repeatedly after a period is Done, is a
// harmless no-op.
func (d *Driver) EndBlock() bool {
	if d.Done() {
		return false
	}
	next, nextRound, ok := d.current.EndBlock()
	if !ok {
		return false
	}
	from := d.current.ID()
	d.state = next
	d.current = nextRound
	d.metrics.ObserveTransition(string(from), string(d.current.ID()))
	return true
}

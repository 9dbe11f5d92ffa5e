// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics instruments the period driver with Prometheus
// series: payload admission/drop counts, round transitions, and
// completed periods. It mirrors the shape of the consensus engine's
// protocol/nova metrics (a struct of pre-built collectors registered
// once at construction).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the Prometheus series the period driver updates. A
// nil *Collector is valid everywhere it is accepted: every method has
// a nil-receiver no-op form, matching the optionality of the
// consensus engine's own metrics wiring.
type Collector struct {
	payloadsAdmitted *prometheus.CounterVec
	payloadsDropped  *prometheus.CounterVec
	roundTransitions *prometheus.CounterVec
	currentRound     *prometheus.GaugeVec
	periodsCompleted prometheus.Counter
}

// New builds and registers the period driver's metrics against reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		payloadsAdmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "priceround_payloads_admitted_total",
			Help: "Number of payloads admitted, by round.",
		}, []string{"round"}),
		payloadsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "priceround_payloads_dropped_total",
			Help: "Number of payloads dropped, by round and reason.",
		}, []string{"round", "reason"}),
		roundTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "priceround_round_transitions_total",
			Help: "Number of round transitions, by source and destination round.",
		}, []string{"from", "to"}),
		currentRound: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "priceround_current_round",
			Help: "1 for the currently active round, 0 otherwise.",
		}, []string{"round"}),
		periodsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "priceround_periods_completed_total",
			Help: "Number of periods that reached consensus_reached.",
		}),
	}
	for _, collector := range []prometheus.Collector{
		c.payloadsAdmitted,
		c.payloadsDropped,
		c.roundTransitions,
		c.currentRound,
		c.periodsCompleted,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObservePayload records whether a payload was admitted into round, and
// if dropped, why.
func (c *Collector) ObservePayload(round string, admitted bool, dropReason string) {
	if c == nil {
		return
	}
	if admitted {
		c.payloadsAdmitted.WithLabelValues(round).Inc()
		return
	}
	c.payloadsDropped.WithLabelValues(round, dropReason).Inc()
}

// ObserveTransition records a round transition and updates the active
// round gauge.
func (c *Collector) ObserveTransition(from, to string) {
	if c == nil {
		return
	}
	c.roundTransitions.WithLabelValues(from, to).Inc()
	c.currentRound.WithLabelValues(from).Set(0)
	c.currentRound.WithLabelValues(to).Set(1)
	if to == "consensus_reached" {
		c.periodsCompleted.Inc()
	}
}

// SetCurrentRound marks round as active without recording a
// transition, used once at driver construction.
func (c *Collector) SetCurrentRound(round string) {
	if c == nil {
		return
	}
	c.currentRound.WithLabelValues(round).Set(1)
}

// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersAllSeries(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(err)
	require.NotNil(c)

	// Labelled vectors only appear in Gather once a label set is used.
	c.ObservePayload("registration", true, "")
	c.ObservePayload("registration", false, "not_admitted")
	c.ObserveTransition("registration", "randomness")

	families, err := reg.Gather()
	require.NoError(err)
	require.Len(families, 5)
}

func TestNilCollectorMethodsAreNoOps(t *testing.T) {
	var c *Collector
	require.NotPanics(t, func() {
		c.ObservePayload("registration", true, "")
		c.ObservePayload("registration", false, "not_admitted")
		c.ObserveTransition("registration", "randomness")
		c.SetCurrentRound("registration")
	})
}

func TestObserveTransitionIncrementsPeriodsCompletedOnConsensus(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(err)

	c.ObserveTransition("validate_transaction", "consensus_reached")

	var m dto.Metric
	require.NoError(c.periodsCompleted.Write(&m))
	require.Equal(1.0, m.GetCounter().GetValue())
}

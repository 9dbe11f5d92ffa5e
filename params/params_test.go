// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValid(t *testing.T) {
	require := require.New(t)

	p := New(4, 3)
	require.NoError(p.Valid())
	require.Equal(uint32(4), p.MaxParticipants())
	require.Equal(uint32(3), p.ConsensusThreshold())
}

func TestValidRejectsZeroParticipants(t *testing.T) {
	require := require.New(t)

	p := New(0, 1)
	require.ErrorIs(p.Valid(), ErrInvalidMaxParticipants)
}

func TestValidRejectsThresholdOutOfRange(t *testing.T) {
	require := require.New(t)

	require.ErrorIs(New(4, 0).Valid(), ErrInvalidConsensusThreshold)
	require.ErrorIs(New(4, 5).Valid(), ErrInvalidConsensusThreshold)
}

func TestDefaultThreshold(t *testing.T) {
	require := require.New(t)

	require.Equal(uint32(0), DefaultThreshold(0))
	require.Equal(uint32(3), DefaultThreshold(3))
	require.Equal(uint32(4), DefaultThreshold(4))
	require.Equal(uint32(5), DefaultThreshold(5))
	require.Equal(uint32(6), DefaultThreshold(7))
}

func TestBuilderWithExplicitThreshold(t *testing.T) {
	require := require.New(t)

	p, err := NewBuilder().
		WithMaxParticipants(4).
		WithConsensusThreshold(3).
		Build()
	require.NoError(err)
	require.Equal(uint32(4), p.MaxParticipants())
	require.Equal(uint32(3), p.ConsensusThreshold())
}

func TestBuilderWithDefaultThreshold(t *testing.T) {
	require := require.New(t)

	p, err := NewBuilder().
		WithMaxParticipants(7).
		WithDefaultThreshold().
		Build()
	require.NoError(err)
	require.Equal(uint32(6), p.ConsensusThreshold())
}

func TestBuilderMissingThreshold(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder().WithMaxParticipants(4).Build()
	require.ErrorIs(err, ErrInvalidConsensusThreshold)
}

func TestBuilderRejectsZeroParticipants(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder().WithMaxParticipants(0).WithDefaultThreshold().Build()
	require.ErrorIs(err, ErrInvalidMaxParticipants)
}

func TestBuilderDefaultThresholdBeforeParticipantsIsError(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder().WithDefaultThreshold().Build()
	require.ErrorIs(err, ErrInvalidMaxParticipants)
}

// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package params holds the consensus parameters the period state
// machine is externally supplied: the committee size and the vote
// count required to cross a threshold.
package params

import "errors"

var (
	// ErrInvalidMaxParticipants is returned when MaxParticipants is
	// not positive.
	ErrInvalidMaxParticipants = errors.New("max participants must be positive")

	// ErrInvalidConsensusThreshold is returned when ConsensusThreshold
	// is not positive or exceeds MaxParticipants.
	ErrInvalidConsensusThreshold = errors.New("consensus threshold must be positive and at most max participants")
)

// Parameters holds the committee size and the vote count a plurality
// or cardinality predicate must reach to be considered decided.
type Parameters interface {
	// MaxParticipants is the committee size N.
	MaxParticipants() uint32
	// ConsensusThreshold is the number of matching votes required to
	// cross a threshold predicate, typically ceil(2N/3)+1.
	ConsensusThreshold() uint32
	// Valid reports whether the parameters are internally consistent.
	Valid() error
}

type params struct {
	maxParticipants    uint32
	consensusThreshold uint32
}

// New returns Parameters built from explicit values. Callers that want
// the standard BFT threshold should use Builder.WithDefaultThreshold
// instead of computing it themselves.
func New(maxParticipants, consensusThreshold uint32) Parameters {
	return &params{
		maxParticipants:    maxParticipants,
		consensusThreshold: consensusThreshold,
	}
}

func (p *params) MaxParticipants() uint32    { return p.maxParticipants }
func (p *params) ConsensusThreshold() uint32 { return p.consensusThreshold }

func (p *params) Valid() error {
	switch {
	case p.maxParticipants == 0:
		return ErrInvalidMaxParticipants
	case p.consensusThreshold == 0 || p.consensusThreshold > p.maxParticipants:
		return ErrInvalidConsensusThreshold
	default:
		return nil
	}
}

// DefaultThreshold computes the reference BFT quorum ceil(2N/3)+1 for
// a committee of size n, the value spec.md §3 names as the typical
// choice, left for the caller to supply explicitly.
func DefaultThreshold(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return (2*n+2)/3 + 1
}

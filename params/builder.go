// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package params

// Builder is a fluent constructor for Parameters that defers
// validation to Build, accumulating the first error encountered
// rather than panicking mid-chain.
type Builder struct {
	maxParticipants    uint32
	consensusThreshold uint32
	thresholdSet       bool
	err                error
}

// NewBuilder starts a builder with no participants configured yet.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithMaxParticipants sets the committee size N.
func (b *Builder) WithMaxParticipants(n uint32) *Builder {
	if b.err != nil {
		return b
	}
	if n == 0 {
		b.err = ErrInvalidMaxParticipants
		return b
	}
	b.maxParticipants = n
	return b
}

// WithConsensusThreshold sets an explicit threshold. It and
// WithDefaultThreshold write the same setting, so whichever of the two
// is called last decides the threshold.
func (b *Builder) WithConsensusThreshold(t uint32) *Builder {
	if b.err != nil {
		return b
	}
	b.consensusThreshold = t
	b.thresholdSet = true
	return b
}

// WithDefaultThreshold sets the threshold to the standard BFT quorum
// ceil(2N/3)+1 for the committee size configured so far. Call this
// after WithMaxParticipants.
func (b *Builder) WithDefaultThreshold() *Builder {
	if b.err != nil {
		return b
	}
	if b.maxParticipants == 0 {
		b.err = ErrInvalidMaxParticipants
		return b
	}
	b.consensusThreshold = DefaultThreshold(b.maxParticipants)
	b.thresholdSet = true
	return b
}

// Build validates the accumulated configuration and returns
// Parameters, or the first error encountered while building it.
func (b *Builder) Build() (Parameters, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.thresholdSet {
		return nil, ErrInvalidConsensusThreshold
	}
	p := &params{
		maxParticipants:    b.maxParticipants,
		consensusThreshold: b.consensusThreshold,
	}
	if err := p.Valid(); err != nil {
		return nil, err
	}
	return p, nil
}

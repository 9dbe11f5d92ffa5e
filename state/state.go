// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state holds the period state: the immutable accumulator of
// committed round outputs that every round reads from and writes to.
package state

import (
	"encoding/hex"
	"math/big"

	"github.com/luxfi/priceround/internal/orderedmap"
	"github.com/luxfi/priceround/priceaddr"
)

// PeriodState is an immutable record of everything the committee has
// agreed on so far in the current period. Every field is optional:
// it is populated exactly once, by the round that computes it, and
// never mutated afterwards. Reading an unpopulated field panics — per
// spec.md §7 that is a programming error, never a Byzantine input.
//
// Update never mutates the receiver; it returns a new PeriodState that
// shares every field the patch does not touch.
type PeriodState struct {
	participants *orderedmap.Map[priceaddr.Address, struct{}]

	participantToRandomness *orderedmap.Map[priceaddr.Address, string]
	mostVotedRandomness     *string

	participantToSelection  *orderedmap.Map[priceaddr.Address, priceaddr.Address]
	mostVotedKeeperAddress  *priceaddr.Address

	safeContractAddress *priceaddr.Address

	participantToObservations *orderedmap.Map[priceaddr.Address, float64]
	estimateValue             *float64

	participantToEstimate *orderedmap.Map[priceaddr.Address, float64]
	mostVotedEstimate     *float64

	participantToTxHash *orderedmap.Map[priceaddr.Address, string]
	mostVotedTxHash     *string

	participantToSignature *orderedmap.Map[priceaddr.Address, []byte]

	participantToVotes *orderedmap.Map[priceaddr.Address, bool]

	finalTxHash *string
}

// New returns an empty period state, the state at the start of
// Registration.
func New() PeriodState {
	return PeriodState{}
}

// Patch carries the fields an Update call should set. Only non-nil
// fields are applied; PeriodState.Update panics if a patched field is
// already populated, since each field is written exactly once.
type Patch struct {
	Participants *orderedmap.Map[priceaddr.Address, struct{}]

	ParticipantToRandomness *orderedmap.Map[priceaddr.Address, string]
	MostVotedRandomness     *string

	ParticipantToSelection *orderedmap.Map[priceaddr.Address, priceaddr.Address]
	MostVotedKeeperAddress *priceaddr.Address

	SafeContractAddress *priceaddr.Address

	ParticipantToObservations *orderedmap.Map[priceaddr.Address, float64]
	Estimate                  *float64

	ParticipantToEstimate *orderedmap.Map[priceaddr.Address, float64]
	MostVotedEstimate     *float64

	ParticipantToTxHash *orderedmap.Map[priceaddr.Address, string]
	MostVotedTxHash     *string

	ParticipantToSignature *orderedmap.Map[priceaddr.Address, []byte]

	ParticipantToVotes *orderedmap.Map[priceaddr.Address, bool]

	FinalTxHash *string
}

// Update returns a new PeriodState with the patch's fields set,
// sharing every other field with the receiver.
func (s PeriodState) Update(p Patch) PeriodState {
	next := s
	if p.Participants != nil {
		mustUnset(next.participants == nil, "participants")
		next.participants = p.Participants
	}
	if p.ParticipantToRandomness != nil {
		mustUnset(next.participantToRandomness == nil, "participant_to_randomness")
		next.participantToRandomness = p.ParticipantToRandomness
	}
	if p.MostVotedRandomness != nil {
		mustUnset(next.mostVotedRandomness == nil, "most_voted_randomness")
		next.mostVotedRandomness = p.MostVotedRandomness
	}
	if p.ParticipantToSelection != nil {
		mustUnset(next.participantToSelection == nil, "participant_to_selection")
		next.participantToSelection = p.ParticipantToSelection
	}
	if p.MostVotedKeeperAddress != nil {
		mustUnset(next.mostVotedKeeperAddress == nil, "most_voted_keeper_address")
		next.mostVotedKeeperAddress = p.MostVotedKeeperAddress
	}
	if p.SafeContractAddress != nil {
		mustUnset(next.safeContractAddress == nil, "safe_contract_address")
		next.safeContractAddress = p.SafeContractAddress
	}
	if p.ParticipantToObservations != nil {
		mustUnset(next.participantToObservations == nil, "participant_to_observations")
		next.participantToObservations = p.ParticipantToObservations
	}
	if p.Estimate != nil {
		mustUnset(next.estimateValue == nil, "estimate")
		next.estimateValue = p.Estimate
	}
	if p.ParticipantToEstimate != nil {
		mustUnset(next.participantToEstimate == nil, "participant_to_estimate")
		next.participantToEstimate = p.ParticipantToEstimate
	}
	if p.MostVotedEstimate != nil {
		mustUnset(next.mostVotedEstimate == nil, "most_voted_estimate")
		next.mostVotedEstimate = p.MostVotedEstimate
	}
	if p.ParticipantToTxHash != nil {
		mustUnset(next.participantToTxHash == nil, "participant_to_tx_hash")
		next.participantToTxHash = p.ParticipantToTxHash
	}
	if p.MostVotedTxHash != nil {
		mustUnset(next.mostVotedTxHash == nil, "most_voted_tx_hash")
		next.mostVotedTxHash = p.MostVotedTxHash
	}
	if p.ParticipantToSignature != nil {
		mustUnset(next.participantToSignature == nil, "participant_to_signature")
		next.participantToSignature = p.ParticipantToSignature
	}
	if p.ParticipantToVotes != nil {
		mustUnset(next.participantToVotes == nil, "participant_to_votes")
		next.participantToVotes = p.ParticipantToVotes
	}
	if p.FinalTxHash != nil {
		mustUnset(next.finalTxHash == nil, "final_tx_hash")
		next.finalTxHash = p.FinalTxHash
	}
	return next
}

func mustUnset(unset bool, field string) {
	if !unset {
		panic("priceround: field '" + field + "' written twice")
	}
}

func unpopulated(field string) {
	panic("priceround: field '" + field + "' not populated")
}

// Participants returns the frozen committee set.
func (s PeriodState) Participants() *orderedmap.Map[priceaddr.Address, struct{}] {
	if s.participants == nil {
		unpopulated("participants")
	}
	return s.participants
}

// HasParticipants reports whether Registration has completed.
func (s PeriodState) HasParticipants() bool {
	return s.participants != nil
}

// IsParticipant reports whether addr is a member of the committee. It
// is false (rather than panicking) before Registration completes,
// matching invariant 1 of spec.md §3: every admitted payload must come
// from a participant, except during Registration itself.
func (s PeriodState) IsParticipant(addr priceaddr.Address) bool {
	if s.participants == nil {
		return false
	}
	return s.participants.Has(addr)
}

// ParticipantToRandomness returns the per-sender randomness payloads.
func (s PeriodState) ParticipantToRandomness() *orderedmap.Map[priceaddr.Address, string] {
	if s.participantToRandomness == nil {
		unpopulated("participant_to_randomness")
	}
	return s.participantToRandomness
}

// MostVotedRandomness returns the plurality-winning randomness value.
func (s PeriodState) MostVotedRandomness() string {
	if s.mostVotedRandomness == nil {
		unpopulated("most_voted_randomness")
	}
	return *s.mostVotedRandomness
}

// KeeperRandomness derives a value in [0,1) from MostVotedRandomness,
// reproducing the reference arithmetic exactly: int(hex, 16) % 10 / 10.
// This is a deterministic projection, not a uniform sample — see
// spec.md §9. The hex value is parsed with math/big rather than a
// fixed-width uint64 since the source's int(hex, 16) is arbitrary
// precision: a well-formed randomness value longer than 16 hex digits
// must not panic.
func (s PeriodState) KeeperRandomness() float64 {
	randomness := s.MostVotedRandomness()
	trimmed := randomness
	if len(trimmed) >= 2 && trimmed[0] == '0' && (trimmed[1] == 'x' || trimmed[1] == 'X') {
		trimmed = trimmed[2:]
	}
	raw, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		panic("priceround: most_voted_randomness is not valid hex: " + hex.EncodeToString([]byte(randomness)))
	}
	mod := new(big.Int).Mod(raw, big.NewInt(10))
	return float64(mod.Int64()) / 10
}

// ParticipantToSelection returns the per-sender keeper-selection payloads.
func (s PeriodState) ParticipantToSelection() *orderedmap.Map[priceaddr.Address, priceaddr.Address] {
	if s.participantToSelection == nil {
		unpopulated("participant_to_selection")
	}
	return s.participantToSelection
}

// MostVotedKeeperAddress returns the elected keeper.
func (s PeriodState) MostVotedKeeperAddress() priceaddr.Address {
	if s.mostVotedKeeperAddress == nil {
		unpopulated("most_voted_keeper_address")
	}
	return *s.mostVotedKeeperAddress
}

// SafeContractAddress returns the deployed wallet address.
func (s PeriodState) SafeContractAddress() priceaddr.Address {
	if s.safeContractAddress == nil {
		unpopulated("safe_contract_address")
	}
	return *s.safeContractAddress
}

// ParticipantToObservations returns the per-sender price observations.
func (s PeriodState) ParticipantToObservations() *orderedmap.Map[priceaddr.Address, float64] {
	if s.participantToObservations == nil {
		unpopulated("participant_to_observations")
	}
	return s.participantToObservations
}

// Estimate returns the aggregated (median) price estimate.
func (s PeriodState) Estimate() float64 {
	if s.estimateValue == nil {
		unpopulated("estimate")
	}
	return *s.estimateValue
}

// ParticipantToEstimate returns the per-sender estimate votes.
func (s PeriodState) ParticipantToEstimate() *orderedmap.Map[priceaddr.Address, float64] {
	if s.participantToEstimate == nil {
		unpopulated("participant_to_estimate")
	}
	return s.participantToEstimate
}

// MostVotedEstimate returns the plurality-winning estimate.
func (s PeriodState) MostVotedEstimate() float64 {
	if s.mostVotedEstimate == nil {
		unpopulated("most_voted_estimate")
	}
	return *s.mostVotedEstimate
}

// ParticipantToTxHash returns the per-sender tx-hash votes.
func (s PeriodState) ParticipantToTxHash() *orderedmap.Map[priceaddr.Address, string] {
	if s.participantToTxHash == nil {
		unpopulated("participant_to_tx_hash")
	}
	return s.participantToTxHash
}

// MostVotedTxHash returns the plurality-winning tx hash.
func (s PeriodState) MostVotedTxHash() string {
	if s.mostVotedTxHash == nil {
		unpopulated("most_voted_tx_hash")
	}
	return *s.mostVotedTxHash
}

// ParticipantToSignature returns the per-sender signature bytes.
func (s PeriodState) ParticipantToSignature() *orderedmap.Map[priceaddr.Address, []byte] {
	if s.participantToSignature == nil {
		unpopulated("participant_to_signature")
	}
	return s.participantToSignature
}

// ParticipantToVotes returns the per-sender validation votes. Only
// populated on the positive path of a Validate round: a negative
// outcome does not persist votes, per spec.md §4.3.
func (s PeriodState) ParticipantToVotes() *orderedmap.Map[priceaddr.Address, bool] {
	if s.participantToVotes == nil {
		unpopulated("participant_to_votes")
	}
	return s.participantToVotes
}

// FinalTxHash returns the hash of the transaction submitted to the chain.
func (s PeriodState) FinalTxHash() string {
	if s.finalTxHash == nil {
		unpopulated("final_tx_hash")
	}
	return *s.finalTxHash
}

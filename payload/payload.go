// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package payload defines the typed values the replication layer
// delivers into the period state machine: one variant per round that
// accepts input from participants.
package payload

import "github.com/luxfi/priceround/priceaddr"

// Kind discriminates the payload variants.
type Kind uint8

const (
	// KindRegistration carries no data; submitting one is the
	// registration act itself.
	KindRegistration Kind = iota
	KindRandomness
	KindSelectKeeper
	KindDeploySafe
	KindObservation
	KindEstimate
	KindTransactionHash
	KindSignature
	KindFinalizationTx
	KindValidate
)

// String returns a stable name for logging. It is not a round.ID,
// although some names (registration, randomness, deploy_safe) happen
// to equal the id of the round that accepts that kind.
func (k Kind) String() string {
	switch k {
	case KindRegistration:
		return "registration"
	case KindRandomness:
		return "randomness"
	case KindSelectKeeper:
		return "select_keeper"
	case KindDeploySafe:
		return "deploy_safe"
	case KindObservation:
		return "observation"
	case KindEstimate:
		return "estimate"
	case KindTransactionHash:
		return "transaction_hash"
	case KindSignature:
		return "signature"
	case KindFinalizationTx:
		return "finalization_tx"
	case KindValidate:
		return "validate"
	default:
		return "unknown"
	}
}

// Payload is a tagged value with a mandatory sender and one populated
// variant field, selected by Kind. Only the field matching Kind is
// meaningful; rounds never read the others.
type Payload struct {
	Sender priceaddr.Address
	Kind   Kind

	// Randomness
	RandomnessValue string // hex-string

	// SelectKeeper
	Keeper priceaddr.Address

	// DeploySafe
	SafeAddress priceaddr.Address

	// Observation
	Observation float64

	// Estimate
	Estimate float64

	// TransactionHash / FinalizationTx
	TxHash string // hex-string

	// Signature
	Signature []byte

	// Validate
	Vote bool
}

// Registration returns a registration payload from sender.
func Registration(sender priceaddr.Address) Payload {
	return Payload{Sender: sender, Kind: KindRegistration}
}

// Randomness returns a randomness payload from sender.
func Randomness(sender priceaddr.Address, value string) Payload {
	return Payload{Sender: sender, Kind: KindRandomness, RandomnessValue: value}
}

// SelectKeeper returns a keeper-selection payload from sender.
func SelectKeeper(sender, keeper priceaddr.Address) Payload {
	return Payload{Sender: sender, Kind: KindSelectKeeper, Keeper: keeper}
}

// DeploySafe returns a safe-deployment payload from sender.
func DeploySafe(sender, safeAddress priceaddr.Address) Payload {
	return Payload{Sender: sender, Kind: KindDeploySafe, SafeAddress: safeAddress}
}

// Observation returns a price observation payload from sender.
func Observation(sender priceaddr.Address, observation float64) Payload {
	return Payload{Sender: sender, Kind: KindObservation, Observation: observation}
}

// Estimate returns an estimate-vote payload from sender.
func Estimate(sender priceaddr.Address, estimate float64) Payload {
	return Payload{Sender: sender, Kind: KindEstimate, Estimate: estimate}
}

// TransactionHash returns a tx-hash-vote payload from sender.
func TransactionHash(sender priceaddr.Address, txHash string) Payload {
	return Payload{Sender: sender, Kind: KindTransactionHash, TxHash: txHash}
}

// Signature returns a signature payload from sender.
func Signature(sender priceaddr.Address, signature []byte) Payload {
	return Payload{Sender: sender, Kind: KindSignature, Signature: signature}
}

// FinalizationTx returns a finalization payload from sender.
func FinalizationTx(sender priceaddr.Address, txHash string) Payload {
	return Payload{Sender: sender, Kind: KindFinalizationTx, TxHash: txHash}
}

// Validate returns a validation-vote payload from sender.
func Validate(sender priceaddr.Address, vote bool) Payload {
	return Payload{Sender: sender, Kind: KindValidate, Vote: vote}
}

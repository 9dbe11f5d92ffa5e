// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package priceaddr defines the committee participant identity used
// throughout the price estimation period state machine.
package priceaddr

// Address identifies a committee participant or an external wallet.
// It is deliberately opaque: only equality and hashability are
// required, so a plain string satisfies every contract in this
// module.
type Address string

// Empty is the zero-value address, never a valid participant.
const Empty Address = ""

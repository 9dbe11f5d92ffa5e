// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command pricesim drives a single price-estimation period end to end
// against an in-memory, randomly generated payload feed. It exists to
// exercise the round graph the way a real committee would, without
// needing a network or a replication layer.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/priceround/metrics"
	"github.com/luxfi/priceround/params"
	"github.com/luxfi/priceround/payload"
	"github.com/luxfi/priceround/period"
	"github.com/luxfi/priceround/priceaddr"
	"github.com/luxfi/priceround/round"
)

func main() {
	nParticipants := flag.Int("participants", 4, "committee size")
	threshold := flag.Uint("threshold", 0, "consensus threshold (0 = default BFT quorum)")
	seed := flag.Int64("seed", 1, "price-observation random seed")
	flag.Parse()

	n := uint32(*nParticipants)
	t := uint32(*threshold)
	if t == 0 {
		t = params.DefaultThreshold(n)
	}

	p, err := params.NewBuilder().
		WithMaxParticipants(n).
		WithConsensusThreshold(t).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid parameters: %v\n", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	mc, err := metrics.New(reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to register metrics: %v\n", err)
		os.Exit(1)
	}

	members := make([]priceaddr.Address, n)
	for i := range members {
		members[i] = priceaddr.Address(fmt.Sprintf("participant-%d", i))
	}
	keeper := members[0]

	d := period.New(p, nil, mc)
	fmt.Printf("=== Price Estimation Simulator ===\n")
	fmt.Printf("participants=%d threshold=%d\n\n", n, t)

	rng := rand.New(rand.NewSource(*seed))
	runFeed(d, members, keeper, rng)

	fmt.Printf("\nfinal_tx_hash=%s\n", d.State().FinalTxHash())
	fmt.Printf("estimate=%.4f\n", d.State().Estimate())
}

// runFeed submits payloads for every round of the graph in sequence,
// driving the period all the way to consensus_reached. It assumes an
// honest, fully-available committee: every member submits exactly
// once per round and the keeper always succeeds.
func runFeed(d *period.Driver, members []priceaddr.Address, keeper priceaddr.Address, rng *rand.Rand) {
	for !d.Done() {
		id := d.CurrentRoundID()
		switch id {
		case round.IDRegistration:
			for _, m := range members {
				d.Apply(payload.Registration(m))
			}
		case round.IDRandomness:
			// Every honest replica observes the same randomness beacon
			// value; draw it once per round, not once per member.
			v := fmt.Sprintf("0x%02x", rng.Intn(256))
			for _, m := range members {
				d.Apply(payload.Randomness(m, v))
			}
		case round.IDSelectKeeperA, round.IDSelectKeeperB:
			for _, m := range members {
				d.Apply(payload.SelectKeeper(m, keeper))
			}
		case round.IDDeploySafe:
			d.Apply(payload.DeploySafe(keeper, "0xsafe0000000000000000000000000000000000"))
		case round.IDValidateSafe, round.IDValidateTransaction:
			for _, m := range members {
				d.Apply(payload.Validate(m, true))
			}
		case round.IDCollectObservation:
			for _, m := range members {
				d.Apply(payload.Observation(m, 100+rng.Float64()*10))
			}
		case round.IDEstimateConsensus:
			estimate := d.State().Estimate()
			for _, m := range members {
				d.Apply(payload.Estimate(m, estimate))
			}
		case round.IDTxHash:
			for _, m := range members {
				d.Apply(payload.TransactionHash(m, "0xdeadbeef"))
			}
		case round.IDCollectSignature:
			for _, m := range members {
				d.Apply(payload.Signature(m, []byte(m)))
			}
		case round.IDFinalization:
			d.Apply(payload.FinalizationTx(keeper, "0xfinaltxhash"))
		}

		if !d.EndBlock() {
			fmt.Fprintf(os.Stderr, "round %s did not reach its threshold with the simulated feed\n", id)
			os.Exit(1)
		}
		fmt.Printf("-> %s\n", d.CurrentRoundID())
	}
}

// Package rpc probes configured RPC endpoints.
package rpc

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/Karotoka/ERC-7521/internal/chain"
)

// ErrNoHealthyRPC is returned when no probed endpoint answered.
var ErrNoHealthyRPC = errors.New("no healthy RPC endpoint available")

// Target is a named endpoint to probe.
type Target struct {
	Name string
	URL  string
}

// Result holds the outcome of probing one Target.
type Result struct {
	Target
	Latency     time.Duration
	ChainID     *big.Int
	BlockNumber uint64
	Err         error
}

// Healthy reports whether the endpoint answered both queries.
func (r Result) Healthy() bool { return r.Err == nil }

// pingFunc is swapped out in tests.
var pingFunc = chain.Ping

// Probe pings all targets in parallel, each bounded by timeout, and returns
// results in target order.
func Probe(ctx context.Context, targets []Target, timeout time.Duration) []Result {
	results := make([]Result, len(targets))
	var wg sync.WaitGroup

	for i, target := range targets {
		wg.Add(1)
		go func(idx int, tg Target) {
			defer wg.Done()
			pctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			latency, chainID, block, err := pingFunc(pctx, tg.URL)
			results[idx] = Result{
				Target:      tg,
				Latency:     latency,
				ChainID:     chainID,
				BlockNumber: block,
				Err:         err,
			}
		}(i, target)
	}

	wg.Wait()
	return results
}

// Fastest returns the healthy result with the lowest latency.
func Fastest(results []Result) (*Result, error) {
	var best *Result
	for i := range results {
		r := &results[i]
		if !r.Healthy() {
			continue
		}
		if best == nil || r.Latency < best.Latency {
			best = r
		}
	}
	if best == nil {
		return nil, ErrNoHealthyRPC
	}
	return best, nil
}

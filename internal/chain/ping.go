package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
)

// Ping dials rpcURL and reports its chain id and head block. latency covers
// the block number round trip only.
func Ping(ctx context.Context, rpcURL string) (latency time.Duration, chainID *big.Int, block uint64, err error) {
	ec, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("dialing %s: %w", rpcURL, err)
	}
	defer ec.Close()

	start := time.Now()
	block, err = ec.BlockNumber(ctx)
	latency = time.Since(start)
	if err != nil {
		return latency, nil, 0, fmt.Errorf("reading block number: %w", err)
	}
	chainID, err = ec.ChainID(ctx)
	if err != nil {
		return latency, nil, block, fmt.Errorf("reading chain id: %w", err)
	}
	return latency, chainID, block, nil
}

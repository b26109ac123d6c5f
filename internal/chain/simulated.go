package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"
)

const (
	defaultSimAccounts = 2
	defaultSimGasLimit = 30_000_000
)

// DefaultSimBalance is the genesis balance of every simulated actor: 1000 ether.
var DefaultSimBalance = new(uint256.Int).Mul(uint256.NewInt(1000), uint256.NewInt(params.Ether)).ToBig()

// Simulated is an in-process chain with a set of funded actors.
type Simulated struct {
	backend *simulated.Backend
	keys    []*ecdsa.PrivateKey
	chainID *big.Int
}

type simConfig struct {
	accounts int
	keys     []*ecdsa.PrivateKey
	balance  *big.Int
	gasLimit uint64
}

// SimOption configures NewSimulated.
type SimOption func(*simConfig)

// WithAccounts sets how many random actors are generated.
func WithAccounts(n int) SimOption {
	return func(c *simConfig) { c.accounts = n }
}

// WithKeys funds the given keys instead of generating random ones.
func WithKeys(keys ...*ecdsa.PrivateKey) SimOption {
	return func(c *simConfig) { c.keys = keys }
}

// WithBalance sets the genesis balance of every actor.
func WithBalance(wei *big.Int) SimOption {
	return func(c *simConfig) { c.balance = wei }
}

// WithBlockGasLimit sets the gas limit of simulated blocks.
func WithBlockGasLimit(gas uint64) SimOption {
	return func(c *simConfig) { c.gasLimit = gas }
}

// NewSimulated starts a simulated chain.
func NewSimulated(opts ...SimOption) (*Simulated, error) {
	cfg := &simConfig{
		accounts: defaultSimAccounts,
		balance:  DefaultSimBalance,
		gasLimit: defaultSimGasLimit,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	keys := cfg.keys
	if len(keys) == 0 {
		if cfg.accounts < 1 {
			return nil, fmt.Errorf("simulated chain needs at least one account, got %d", cfg.accounts)
		}
		for i := 0; i < cfg.accounts; i++ {
			key, err := crypto.GenerateKey()
			if err != nil {
				return nil, fmt.Errorf("generating key: %w", err)
			}
			keys = append(keys, key)
		}
	}

	alloc := make(types.GenesisAlloc, len(keys))
	for _, key := range keys {
		alloc[crypto.PubkeyToAddress(key.PublicKey)] = types.Account{Balance: new(big.Int).Set(cfg.balance)}
	}

	backend := simulated.NewBackend(alloc, simulated.WithBlockGasLimit(cfg.gasLimit))
	chainID, err := backend.Client().ChainID(context.Background())
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("reading simulated chain id: %w", err)
	}
	log.Debug("Simulated chain started", "accounts", len(keys), "chainID", chainID)

	return &Simulated{backend: backend, keys: keys, chainID: chainID}, nil
}

// Accounts returns the number of funded actors.
func (s *Simulated) Accounts() int { return len(s.keys) }

// Address returns the address of actor i.
func (s *Simulated) Address(i int) common.Address {
	return crypto.PubkeyToAddress(s.keys[i].PublicKey)
}

// Key returns the private key of actor i.
func (s *Simulated) Key(i int) *ecdsa.PrivateKey { return s.keys[i] }

// ChainID returns the simulated chain id.
func (s *Simulated) ChainID() *big.Int { return new(big.Int).Set(s.chainID) }

// Backend returns the provider shared by all actors.
func (s *Simulated) Backend() Backend { return s.backend.Client() }

// Client returns a client signing as actor i. Every send mines a block.
func (s *Simulated) Client(i int, opts ...Option) (*Client, error) {
	if i < 0 || i >= len(s.keys) {
		return nil, fmt.Errorf("actor %d out of range [0, %d)", i, len(s.keys))
	}
	opts = append([]Option{WithCommit(s.commit)}, opts...)
	return NewKeyedClient(s.backend.Client(), s.keys[i], s.chainID, opts...)
}

// Commit mines the pending block.
func (s *Simulated) Commit() common.Hash {
	return s.backend.Commit()
}

func (s *Simulated) commit() { s.backend.Commit() }

// Close stops the simulated chain.
func (s *Simulated) Close() error {
	return s.backend.Close()
}

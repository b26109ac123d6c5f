package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
)

// ErrNoCode is wrapped when a deployment mined but left no code behind.
var ErrNoCode = errors.New("no contract code at deployed address")

// Backend is the provider side of a Client: everything the bindings need to
// call, transact, filter and wait, plus a few account reads.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client bundles a Backend with a signing identity. It is shared, not
// owned, by every contract handle created from it.
type Client struct {
	backend     Backend
	auth        *bind.TransactOpts
	chainID     *big.Int
	commit      func()
	waitTimeout time.Duration
	close       func()
}

// Option configures a Client.
type Option func(*Client)

// WithCommit sets a hook run after every send and before waiting for the
// receipt. Simulated chains use it to mine the pending block.
func WithCommit(fn func()) Option {
	return func(c *Client) {
		c.commit = fn
	}
}

// WithWaitTimeout bounds how long Wait blocks for a receipt. Zero means no
// bound beyond the caller's context.
func WithWaitTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.waitTimeout = d
	}
}

// NewClient creates a client that signs with auth.
func NewClient(backend Backend, auth *bind.TransactOpts, chainID *big.Int, opts ...Option) *Client {
	c := &Client{
		backend: backend,
		auth:    auth,
		chainID: new(big.Int).Set(chainID),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewKeyedClient creates a client that signs with key.
func NewKeyedClient(backend Backend, key *ecdsa.PrivateKey, chainID *big.Int, opts ...Option) (*Client, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("creating transactor: %w", err)
	}
	return NewClient(backend, auth, chainID, opts...), nil
}

// Dial connects to an RPC endpoint and returns a client signing with key.
func Dial(ctx context.Context, rpcURL string, key *ecdsa.PrivateKey, opts ...Option) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", rpcURL, err)
	}
	chainID, err := ec.ChainID(ctx)
	if err != nil {
		ec.Close()
		return nil, fmt.Errorf("reading chain id: %w", err)
	}
	log.Debug("Connected to RPC", "url", rpcURL, "chainID", chainID)
	c, err := NewKeyedClient(ec, key, chainID, opts...)
	if err != nil {
		ec.Close()
		return nil, err
	}
	c.close = ec.Close
	return c, nil
}

// DialReadOnly connects to an RPC endpoint for calls only. Transactions sent
// through the returned client fail to sign.
func DialReadOnly(ctx context.Context, rpcURL string, from common.Address, opts ...Option) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", rpcURL, err)
	}
	chainID, err := ec.ChainID(ctx)
	if err != nil {
		ec.Close()
		return nil, fmt.Errorf("reading chain id: %w", err)
	}
	c := NewClient(ec, &bind.TransactOpts{From: from}, chainID, opts...)
	c.close = ec.Close
	return c, nil
}

// Close releases the connection if the client dialed it itself.
func (c *Client) Close() {
	if c.close != nil {
		c.close()
	}
}

// Backend returns the underlying provider.
func (c *Client) Backend() Backend { return c.backend }

// Address returns the signing account.
func (c *Client) Address() common.Address { return c.auth.From }

// ChainID returns a copy of the chain id transactions are signed for.
func (c *Client) ChainID() *big.Int { return new(big.Int).Set(c.chainID) }

// TransactOpts returns a fresh copy of the signing options carrying ctx and
// value. value may be nil.
func (c *Client) TransactOpts(ctx context.Context, value *big.Int) *bind.TransactOpts {
	opts := *c.auth
	opts.Context = ctx
	opts.Value = value
	return &opts
}

// CallOpts returns read options for the signing account.
func (c *Client) CallOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx, From: c.auth.From}
}

// BalanceAt returns the native balance of account at the latest block.
func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	return c.backend.BalanceAt(ctx, account, nil)
}

// Send builds a transaction with submit, then waits for it to be mined and
// to succeed.
func (c *Client) Send(ctx context.Context, op string, value *big.Int, submit func(*bind.TransactOpts) (*types.Transaction, error)) (*types.Receipt, error) {
	tx, err := submit(c.TransactOpts(ctx, value))
	if err != nil {
		return nil, classifySubmit(op, err)
	}
	log.Debug("Transaction submitted", "op", op, "hash", tx.Hash(), "from", c.Address(), "nonce", tx.Nonce())
	return c.Wait(ctx, op, tx)
}

// Deploy runs a contract-creation function, waits for it, and checks that
// code exists at the new address.
func (c *Client) Deploy(ctx context.Context, op string, deploy func(*bind.TransactOpts) (common.Address, *types.Transaction, error)) (common.Address, *types.Receipt, error) {
	addr, tx, err := deploy(c.TransactOpts(ctx, nil))
	if err != nil {
		return common.Address{}, nil, classifySubmit(op, err)
	}
	log.Debug("Deployment submitted", "op", op, "hash", tx.Hash(), "address", addr)

	receipt, err := c.Wait(ctx, op, tx)
	if err != nil {
		return common.Address{}, receipt, err
	}
	code, err := c.backend.CodeAt(ctx, addr, nil)
	if err != nil {
		return common.Address{}, receipt, &TxError{Kind: KindConfirmation, Op: op, Hash: tx.Hash(), Err: fmt.Errorf("reading code: %w", err)}
	}
	if len(code) == 0 {
		return common.Address{}, receipt, &TxError{Kind: KindExecution, Op: op, Hash: tx.Hash(), Err: ErrNoCode}
	}
	log.Info("Contract deployed", "op", op, "address", addr, "block", receipt.BlockNumber)
	return addr, receipt, nil
}

// Wait blocks until tx is mined and returns its receipt. A reverted receipt
// is returned together with a KindExecution error.
func (c *Client) Wait(ctx context.Context, op string, tx *types.Transaction) (*types.Receipt, error) {
	if c.commit != nil {
		c.commit()
	}
	if c.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.waitTimeout)
		defer cancel()
	}

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, &TxError{Kind: KindConfirmation, Op: op, Hash: tx.Hash(), Err: err}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, &TxError{
			Kind:   KindExecution,
			Op:     op,
			Hash:   tx.Hash(),
			Reason: c.replayReason(ctx, tx, receipt),
		}
	}
	log.Debug("Transaction confirmed", "op", op, "hash", tx.Hash(), "block", receipt.BlockNumber, "gasUsed", receipt.GasUsed)
	return receipt, nil
}

// replayReason re-executes a reverted transaction against its parent block
// to recover the revert reason.
func (c *Client) replayReason(ctx context.Context, tx *types.Transaction, receipt *types.Receipt) string {
	if receipt.BlockNumber == nil || receipt.BlockNumber.Sign() == 0 {
		return ""
	}
	msg := ethereum.CallMsg{
		From:  c.Address(),
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}
	parent := new(big.Int).Sub(receipt.BlockNumber, big.NewInt(1))
	_, err := c.backend.CallContract(ctx, msg, parent)
	return revertReason(err)
}

// Package wrappers provides small typed handles over deployed test
// contracts. Each operation submits one transaction and waits for it to be
// mined and to succeed before returning.
package wrappers

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/Karotoka/ERC-7521/internal/bindings"
	"github.com/Karotoka/ERC-7521/internal/chain"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
)

// ErrInvalidAmount is returned for nil or negative amounts.
var ErrInvalidAmount = errors.New("amount must be a non-negative integer")

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// TestWrappedNativeTokenContract is a handle to a deployed wrapped native
// token. It borrows the client it was created with.
type TestWrappedNativeTokenContract struct {
	client   *chain.Client
	address  common.Address
	deployTx common.Hash
	contract *bindings.TestWrappedNativeToken
}

// Deploy deploys a new token with client's account and waits until it is
// mined. No handle is returned unless the deployment succeeded.
func Deploy(ctx context.Context, client *chain.Client) (*TestWrappedNativeTokenContract, error) {
	var contract *bindings.TestWrappedNativeToken
	addr, receipt, err := client.Deploy(ctx, "deploy", func(opts *bind.TransactOpts) (common.Address, *types.Transaction, error) {
		a, tx, c, err := bindings.DeployTestWrappedNativeToken(opts, client.Backend())
		contract = c
		return a, tx, err
	})
	if err != nil {
		return nil, err
	}
	return &TestWrappedNativeTokenContract{
		client:   client,
		address:  addr,
		deployTx: receipt.TxHash,
		contract: contract,
	}, nil
}

// Bind returns a handle for a token already deployed at address.
func Bind(address common.Address, client *chain.Client) (*TestWrappedNativeTokenContract, error) {
	contract, err := bindings.NewTestWrappedNativeToken(address, client.Backend())
	if err != nil {
		return nil, fmt.Errorf("binding token at %s: %w", address.Hex(), err)
	}
	return &TestWrappedNativeTokenContract{
		client:   client,
		address:  address,
		contract: contract,
	}, nil
}

// Address returns the token's address.
func (c *TestWrappedNativeTokenContract) Address() common.Address { return c.address }

// DeployTxHash returns the deployment transaction hash, or the zero hash
// for handles created with Bind.
func (c *TestWrappedNativeTokenContract) DeployTxHash() common.Hash { return c.deployTx }

// Client returns the client the handle sends with.
func (c *TestWrappedNativeTokenContract) Client() *chain.Client { return c.client }

// Contract exposes the typed binding, e.g. for event parsing.
func (c *TestWrappedNativeTokenContract) Contract() *bindings.TestWrappedNativeToken {
	return c.contract
}

// Deposit wraps value of native currency. value travels as the
// transaction value, not as a call argument.
func (c *TestWrappedNativeTokenContract) Deposit(ctx context.Context, value *big.Int) error {
	if err := checkAmount(value); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	_, err := c.client.Send(ctx, "deposit", value, c.contract.Deposit)
	if err != nil {
		return err
	}
	log.Debug("Deposited", "token", c.address, "from", c.client.Address(), "value", value)
	return nil
}

// Transfer moves amount of wrapped tokens from the client's account to to.
func (c *TestWrappedNativeTokenContract) Transfer(ctx context.Context, to common.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return fmt.Errorf("transfer: %w", err)
	}
	_, err := c.client.Send(ctx, "transfer", nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.Transfer(opts, to, amount)
	})
	if err != nil {
		return err
	}
	log.Debug("Transferred", "token", c.address, "from", c.client.Address(), "to", to, "amount", amount)
	return nil
}

// Withdraw unwraps amount back into native currency.
func (c *TestWrappedNativeTokenContract) Withdraw(ctx context.Context, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}
	_, err := c.client.Send(ctx, "withdraw", nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.Withdraw(opts, amount)
	})
	return err
}

// BalanceOf returns owner's wrapped balance.
func (c *TestWrappedNativeTokenContract) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	bal, err := c.contract.BalanceOf(c.client.CallOpts(ctx), owner)
	if err != nil {
		return nil, fmt.Errorf("balanceOf %s: %w", owner.Hex(), err)
	}
	return bal, nil
}

// TotalSupply returns the amount of native currency held by the token.
func (c *TestWrappedNativeTokenContract) TotalSupply(ctx context.Context) (*big.Int, error) {
	supply, err := c.contract.TotalSupply(c.client.CallOpts(ctx))
	if err != nil {
		return nil, fmt.Errorf("totalSupply: %w", err)
	}
	return supply, nil
}

// Decimals returns the token's decimals.
func (c *TestWrappedNativeTokenContract) Decimals(ctx context.Context) (uint8, error) {
	d, err := c.contract.Decimals(c.client.CallOpts(ctx))
	if err != nil {
		return 0, fmt.Errorf("decimals: %w", err)
	}
	return d, nil
}

func checkAmount(v *big.Int) error {
	if v == nil || v.Sign() < 0 {
		return ErrInvalidAmount
	}
	if v.Cmp(maxUint256) > 0 {
		return fmt.Errorf("%w: exceeds uint256", ErrInvalidAmount)
	}
	return nil
}

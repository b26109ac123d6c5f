package wrappers

import (
	"context"
	"math/big"
	"testing"

	"github.com/Karotoka/ERC-7521/internal/chain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// MustContract wraps a handle so that any chain error aborts the test.
type MustContract struct {
	*TestWrappedNativeTokenContract
	t   testing.TB
	ctx context.Context
}

// MustDeploy deploys a token and fails t immediately if anything goes wrong.
func MustDeploy(t testing.TB, client *chain.Client) *MustContract {
	t.Helper()
	ctx := context.Background()
	c, err := Deploy(ctx, client)
	require.NoError(t, err, "deploying wrapped native token")
	return &MustContract{TestWrappedNativeTokenContract: c, t: t, ctx: ctx}
}

// Must wraps an existing handle.
func Must(t testing.TB, c *TestWrappedNativeTokenContract) *MustContract {
	return &MustContract{TestWrappedNativeTokenContract: c, t: t, ctx: context.Background()}
}

// Deposit deposits value or fails the test.
func (m *MustContract) Deposit(value *big.Int) {
	m.t.Helper()
	require.NoError(m.t, m.TestWrappedNativeTokenContract.Deposit(m.ctx, value), "deposit %s", value)
}

// Transfer transfers amount to to or fails the test.
func (m *MustContract) Transfer(to common.Address, amount *big.Int) {
	m.t.Helper()
	require.NoError(m.t, m.TestWrappedNativeTokenContract.Transfer(m.ctx, to, amount), "transfer %s to %s", amount, to.Hex())
}

// Withdraw withdraws amount or fails the test.
func (m *MustContract) Withdraw(amount *big.Int) {
	m.t.Helper()
	require.NoError(m.t, m.TestWrappedNativeTokenContract.Withdraw(m.ctx, amount), "withdraw %s", amount)
}

// BalanceOf returns owner's balance or fails the test.
func (m *MustContract) BalanceOf(owner common.Address) *big.Int {
	m.t.Helper()
	bal, err := m.TestWrappedNativeTokenContract.BalanceOf(m.ctx, owner)
	require.NoError(m.t, err)
	return bal
}

// As returns a view of the same token that sends with client.
func (m *MustContract) As(client *chain.Client) *MustContract {
	m.t.Helper()
	c, err := Bind(m.Address(), client)
	require.NoError(m.t, err)
	return &MustContract{TestWrappedNativeTokenContract: c, t: m.t, ctx: m.ctx}
}

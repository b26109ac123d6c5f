package wrappers

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/Karotoka/ERC-7521/internal/chain"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSim starts a two-actor simulated chain and returns a client per actor.
func newSim(t *testing.T) (*chain.Simulated, *chain.Client, *chain.Client) {
	t.Helper()
	sim, err := chain.NewSimulated(chain.WithAccounts(2))
	require.NoError(t, err)
	t.Cleanup(func() { sim.Close() })

	a, err := sim.Client(0)
	require.NoError(t, err)
	b, err := sim.Client(1)
	require.NoError(t, err)
	return sim, a, b
}

func balance(t *testing.T, c *TestWrappedNativeTokenContract, owner common.Address) *big.Int {
	t.Helper()
	bal, err := c.BalanceOf(context.Background(), owner)
	require.NoError(t, err)
	return bal
}

// ---------------------------------------------------------------------------
// Deploy
// ---------------------------------------------------------------------------

func TestDeployTwiceDistinctAddresses(t *testing.T) {
	_, a, _ := newSim(t)
	ctx := context.Background()

	first, err := Deploy(ctx, a)
	require.NoError(t, err)
	second, err := Deploy(ctx, a)
	require.NoError(t, err)

	assert.NotEqual(t, first.Address(), second.Address())
	assert.NotEqual(t, common.Hash{}, first.DeployTxHash())
}

func TestDeployLeavesCode(t *testing.T) {
	_, a, _ := newSim(t)
	ctx := context.Background()

	token, err := Deploy(ctx, a)
	require.NoError(t, err)

	code, err := a.Backend().CodeAt(ctx, token.Address(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, code)

	d, err := token.Decimals(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(18), d)
}

func TestFreshTokenIsEmpty(t *testing.T) {
	_, a, _ := newSim(t)
	token, err := Deploy(context.Background(), a)
	require.NoError(t, err)

	assert.Equal(t, int64(0), balance(t, token, a.Address()).Int64())
	supply, err := token.TotalSupply(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), supply.Int64())
}

// ---------------------------------------------------------------------------
// Deposit
// ---------------------------------------------------------------------------

func TestDepositIncreasesBalance(t *testing.T) {
	_, a, _ := newSim(t)
	ctx := context.Background()
	token, err := Deploy(ctx, a)
	require.NoError(t, err)

	require.NoError(t, token.Deposit(ctx, big.NewInt(1000)))
	assert.Equal(t, int64(1000), balance(t, token, a.Address()).Int64())

	require.NoError(t, token.Deposit(ctx, big.NewInt(234)))
	assert.Equal(t, int64(1234), balance(t, token, a.Address()).Int64())

	supply, err := token.TotalSupply(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), supply.Int64())
}

func TestDepositMovesNativeCurrency(t *testing.T) {
	_, a, _ := newSim(t)
	ctx := context.Background()
	token, err := Deploy(ctx, a)
	require.NoError(t, err)

	value := big.NewInt(5_000)
	require.NoError(t, token.Deposit(ctx, value))

	held, err := a.BalanceAt(ctx, token.Address())
	require.NoError(t, err)
	assert.Equal(t, 0, held.Cmp(value))
}

func TestDepositRejectsNegative(t *testing.T) {
	_, a, _ := newSim(t)
	token, err := Deploy(context.Background(), a)
	require.NoError(t, err)

	err = token.Deposit(context.Background(), big.NewInt(-1))
	assert.ErrorIs(t, err, ErrInvalidAmount)
	err = token.Deposit(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDepositEmitsEvent(t *testing.T) {
	_, a, _ := newSim(t)
	ctx := context.Background()
	token, err := Deploy(ctx, a)
	require.NoError(t, err)

	receipt, err := a.Send(ctx, "deposit", big.NewInt(77), token.Contract().Deposit)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)

	ev, err := token.Contract().ParseDeposit(*receipt.Logs[0])
	require.NoError(t, err)
	assert.Equal(t, a.Address(), ev.Dst)
	assert.Equal(t, int64(77), ev.Wad.Int64())
}

// ---------------------------------------------------------------------------
// Transfer
// ---------------------------------------------------------------------------

func TestTransferScenario(t *testing.T) {
	_, a, b := newSim(t)
	ctx := context.Background()

	token, err := Deploy(ctx, a)
	require.NoError(t, err)

	require.NoError(t, token.Deposit(ctx, big.NewInt(1000)))
	assert.Equal(t, int64(1000), balance(t, token, a.Address()).Int64())

	require.NoError(t, token.Transfer(ctx, b.Address(), big.NewInt(400)))
	assert.Equal(t, int64(600), balance(t, token, a.Address()).Int64())
	assert.Equal(t, int64(400), balance(t, token, b.Address()).Int64())
}

func TestTransferInsufficientBalance(t *testing.T) {
	_, a, b := newSim(t)
	ctx := context.Background()
	token, err := Deploy(ctx, a)
	require.NoError(t, err)
	require.NoError(t, token.Deposit(ctx, big.NewInt(100)))

	err = token.Transfer(ctx, b.Address(), big.NewInt(101))
	require.Error(t, err)
	assert.ErrorIs(t, err, chain.ErrReverted)
	assert.True(t, chain.IsKind(err, chain.KindExecution))

	assert.Equal(t, int64(100), balance(t, token, a.Address()).Int64())
	assert.Equal(t, int64(0), balance(t, token, b.Address()).Int64())
}

func TestTransferZeroAmount(t *testing.T) {
	_, a, b := newSim(t)
	ctx := context.Background()
	token, err := Deploy(ctx, a)
	require.NoError(t, err)
	require.NoError(t, token.Deposit(ctx, big.NewInt(50)))

	require.NoError(t, token.Transfer(ctx, b.Address(), big.NewInt(0)))
	assert.Equal(t, int64(50), balance(t, token, a.Address()).Int64())
	assert.Equal(t, int64(0), balance(t, token, b.Address()).Int64())
}

func TestTransferZeroAmountWithoutBalance(t *testing.T) {
	_, a, b := newSim(t)
	ctx := context.Background()
	token, err := Deploy(ctx, a)
	require.NoError(t, err)

	require.NoError(t, token.Transfer(ctx, b.Address(), big.NewInt(0)))
}

func TestTransferToSelf(t *testing.T) {
	_, a, _ := newSim(t)
	ctx := context.Background()
	token, err := Deploy(ctx, a)
	require.NoError(t, err)
	require.NoError(t, token.Deposit(ctx, big.NewInt(10)))

	require.NoError(t, token.Transfer(ctx, a.Address(), big.NewInt(10)))
	assert.Equal(t, int64(10), balance(t, token, a.Address()).Int64())
}

func TestTransferFromSecondActor(t *testing.T) {
	_, a, b := newSim(t)
	ctx := context.Background()
	token, err := Deploy(ctx, a)
	require.NoError(t, err)

	asB, err := Bind(token.Address(), b)
	require.NoError(t, err)
	require.NoError(t, asB.Deposit(ctx, big.NewInt(300)))
	require.NoError(t, asB.Transfer(ctx, a.Address(), big.NewInt(120)))

	assert.Equal(t, int64(120), balance(t, token, a.Address()).Int64())
	assert.Equal(t, int64(180), balance(t, token, b.Address()).Int64())

	transfers, err := token.Contract().FilterTransfer(nil, []common.Address{b.Address()}, nil)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, a.Address(), transfers[0].Dst)
	assert.Equal(t, int64(120), transfers[0].Wad.Int64())
}

// ---------------------------------------------------------------------------
// Withdraw
// ---------------------------------------------------------------------------

func TestWithdrawReturnsNativeCurrency(t *testing.T) {
	_, a, _ := newSim(t)
	ctx := context.Background()
	token, err := Deploy(ctx, a)
	require.NoError(t, err)
	require.NoError(t, token.Deposit(ctx, big.NewInt(900)))

	require.NoError(t, token.Withdraw(ctx, big.NewInt(300)))
	assert.Equal(t, int64(600), balance(t, token, a.Address()).Int64())

	held, err := a.BalanceAt(ctx, token.Address())
	require.NoError(t, err)
	assert.Equal(t, int64(600), held.Int64())
}

func TestWithdrawEmitsEvent(t *testing.T) {
	_, a, _ := newSim(t)
	ctx := context.Background()
	token, err := Deploy(ctx, a)
	require.NoError(t, err)
	require.NoError(t, token.Deposit(ctx, big.NewInt(90)))

	receipt, err := a.Send(ctx, "withdraw", nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return token.Contract().Withdraw(opts, big.NewInt(30))
	})
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)

	ev, err := token.Contract().ParseWithdrawal(*receipt.Logs[0])
	require.NoError(t, err)
	assert.Equal(t, a.Address(), ev.Src)
	assert.Equal(t, int64(30), ev.Wad.Int64())

	_, err = token.Contract().ParseDeposit(*receipt.Logs[0])
	assert.Error(t, err, "withdrawal log must not parse as a deposit")
}

func TestWithdrawTooMuch(t *testing.T) {
	_, a, _ := newSim(t)
	ctx := context.Background()
	token, err := Deploy(ctx, a)
	require.NoError(t, err)

	err = token.Withdraw(ctx, big.NewInt(1))
	assert.ErrorIs(t, err, chain.ErrReverted)
}

// ---------------------------------------------------------------------------
// MustContract
// ---------------------------------------------------------------------------

func TestMustScenario(t *testing.T) {
	_, a, b := newSim(t)

	token := MustDeploy(t, a)
	token.Deposit(big.NewInt(1000))
	token.Transfer(b.Address(), big.NewInt(400))

	assert.Equal(t, int64(600), token.BalanceOf(a.Address()).Int64())
	assert.Equal(t, int64(400), token.BalanceOf(b.Address()).Int64())

	asB := token.As(b)
	asB.Transfer(a.Address(), big.NewInt(400))
	assert.Equal(t, int64(1000), token.BalanceOf(a.Address()).Int64())
}

// recordingTB captures failures instead of stopping the test.
type recordingTB struct {
	testing.TB
	errors []string
	failed bool
}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingTB) FailNow() { r.failed = true }

func TestMustTransferOverdraftFailsTest(t *testing.T) {
	_, a, b := newSim(t)
	rec := &recordingTB{TB: t}

	token := MustDeploy(rec, a)
	token.Deposit(big.NewInt(10))
	require.False(t, rec.failed, "setup failed: %v", rec.errors)

	token.Transfer(b.Address(), big.NewInt(11))
	assert.True(t, rec.failed)
	require.NotEmpty(t, rec.errors)
	assert.Contains(t, rec.errors[0], "transfer 11")
	assert.Equal(t, int64(10), token.BalanceOf(a.Address()).Int64())
}

func TestMustDepositNegativeFailsTest(t *testing.T) {
	_, a, _ := newSim(t)
	rec := &recordingTB{TB: t}

	token := MustDeploy(rec, a)
	token.Deposit(big.NewInt(-1))
	assert.True(t, rec.failed)
}

package chain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataErr mimics the JSON-RPC error a node returns for reverted calls.
type dataErr struct {
	msg  string
	data interface{}
}

func (e *dataErr) Error() string          { return e.msg }
func (e *dataErr) ErrorCode() int         { return 3 }
func (e *dataErr) ErrorData() interface{} { return e.data }

func revertData(t *testing.T, reason string) []byte {
	t.Helper()
	strT, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: strT}}.Pack(reason)
	require.NoError(t, err)
	return append(crypto.Keccak256([]byte("Error(string)"))[:4], packed...)
}

// ---------------------------------------------------------------------------
// TxError
// ---------------------------------------------------------------------------

func TestTxErrorMessage(t *testing.T) {
	hash := common.HexToHash("0xabc")
	err := &TxError{Kind: KindExecution, Op: "transfer", Hash: hash, Reason: "low balance"}
	msg := err.Error()
	assert.Contains(t, msg, "transfer: execution failed")
	assert.Contains(t, msg, hash.Hex())
	assert.Contains(t, msg, "reverted: low balance")
}

func TestTxErrorMessageWithoutHash(t *testing.T) {
	err := &TxError{Kind: KindSubmission, Op: "deposit", Err: errors.New("nonce too low")}
	assert.Equal(t, "deposit: submission failed: nonce too low", err.Error())
}

func TestTxErrorIsReverted(t *testing.T) {
	assert.ErrorIs(t, &TxError{Kind: KindExecution, Op: "x"}, ErrReverted)
	assert.NotErrorIs(t, &TxError{Kind: KindConfirmation, Op: "x"}, ErrReverted)
}

func TestTxErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := fmt.Errorf("outer: %w", &TxError{Kind: KindConfirmation, Op: "x", Err: inner})
	assert.ErrorIs(t, err, inner)
	assert.True(t, IsKind(err, KindConfirmation))
	assert.False(t, IsKind(err, KindSubmission))
	assert.False(t, IsKind(inner, KindConfirmation))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "submission", KindSubmission.String())
	assert.Equal(t, "confirmation", KindConfirmation.String())
	assert.Equal(t, "execution", KindExecution.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

// ---------------------------------------------------------------------------
// classifySubmit / revertReason
// ---------------------------------------------------------------------------

func TestClassifySubmitPlainError(t *testing.T) {
	txErr := classifySubmit("deploy", errors.New("insufficient funds for gas * price + value"))
	assert.Equal(t, KindSubmission, txErr.Kind)
	assert.Equal(t, "deploy", txErr.Op)
}

func TestClassifySubmitRevertMessage(t *testing.T) {
	txErr := classifySubmit("transfer", errors.New("execution reverted"))
	assert.Equal(t, KindExecution, txErr.Kind)
	assert.Empty(t, txErr.Reason)
}

func TestClassifySubmitMentionOfRevertIsNotExecution(t *testing.T) {
	txErr := classifySubmit("deposit", errors.New("dial tcp: lookup revert.example: no such host"))
	assert.Equal(t, KindSubmission, txErr.Kind)
	assert.False(t, errors.Is(txErr, ErrReverted))
}

func TestClassifySubmitRevertData(t *testing.T) {
	err := &dataErr{msg: "execution reverted: not enough", data: hexutil.Encode(revertData(t, "not enough"))}
	txErr := classifySubmit("transfer", err)
	assert.Equal(t, KindExecution, txErr.Kind)
	assert.Equal(t, "not enough", txErr.Reason)
}

func TestRevertReasonBytes(t *testing.T) {
	err := &dataErr{msg: "execution reverted", data: revertData(t, "raw")}
	assert.Equal(t, "raw", revertReason(err))
}

func TestRevertReasonEmptyData(t *testing.T) {
	err := &dataErr{msg: "execution reverted", data: "0x"}
	assert.Equal(t, "", revertReason(err))
}

func TestRevertReasonNoData(t *testing.T) {
	assert.Equal(t, "", revertReason(errors.New("execution reverted")))
	assert.Equal(t, "", revertReason(nil))
}

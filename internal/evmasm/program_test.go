package evmasm

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/core/vm/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Push
// ---------------------------------------------------------------------------

func TestPushSmallest(t *testing.T) {
	code, err := New().Push([]byte{0, 0, 0x2a}).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{byte(vm.PUSH1), 0x2a}, code)
}

func TestPushZero(t *testing.T) {
	code, err := New().Push(nil).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{byte(vm.PUSH1), 0}, code)
}

func TestPushWide(t *testing.T) {
	word := make([]byte, 32)
	word[0] = 0xff
	code, err := New().Push(word).Bytes()
	require.NoError(t, err)
	require.Len(t, code, 33)
	assert.Equal(t, byte(vm.PUSH32), code[0])
}

func TestPushTooWide(t *testing.T) {
	wide := make([]byte, 33)
	wide[0] = 1
	_, err := New().Push(wide).Op(vm.STOP).Bytes()
	assert.ErrorIs(t, err, ErrPushTooWide)
}

func TestPushStripsZerosBeforeWidthCheck(t *testing.T) {
	padded := make([]byte, 33)
	padded[32] = 0x07
	code, err := New().Push(padded).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{byte(vm.PUSH1), 0x07}, code)
}

func TestPushNPads(t *testing.T) {
	code, err := New().PushN(4, []byte{0xab}).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{byte(vm.PUSH4), 0, 0, 0, 0xab}, code)
}

func TestPushUint(t *testing.T) {
	code, err := New().PushUint(0x0102).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{byte(vm.PUSH2), 0x01, 0x02}, code)
}

// ---------------------------------------------------------------------------
// Labels
// ---------------------------------------------------------------------------

func TestForwardLabel(t *testing.T) {
	code, err := New().Jump("end").Op(vm.INVALID).Label("end").Op(vm.STOP).Bytes()
	require.NoError(t, err)
	// PUSH2 0x0005 JUMP INVALID JUMPDEST STOP
	assert.Equal(t, []byte{byte(vm.PUSH2), 0, 5, byte(vm.JUMP), byte(vm.INVALID), byte(vm.JUMPDEST), byte(vm.STOP)}, code)
}

func TestUnknownLabel(t *testing.T) {
	_, err := New().Jump("nowhere").Bytes()
	assert.ErrorIs(t, err, ErrUnknownLabel)
}

func TestDuplicateLabel(t *testing.T) {
	_, err := New().Label("a").Label("a").Bytes()
	assert.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestBytesIsACopy(t *testing.T) {
	p := New().Op(vm.STOP)
	a, err := p.Bytes()
	require.NoError(t, err)
	a[0] = 0xff
	b, err := p.Bytes()
	require.NoError(t, err)
	assert.Equal(t, byte(vm.STOP), b[0])
}

// ---------------------------------------------------------------------------
// Execution
// ---------------------------------------------------------------------------

func returnWord(p *Program) *Program {
	return p.PushUint(0).Op(vm.MSTORE).PushUint(32).PushUint(0).Op(vm.RETURN)
}

func TestExecuteConditionalJump(t *testing.T) {
	p := New().
		PushUint(1).
		JumpI("yes").
		PushUint(7)
	returnWord(p)
	p.Label("yes").PushUint(42)
	returnWord(p)

	code, err := p.Bytes()
	require.NoError(t, err)

	ret, _, err := runtime.Execute(code, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), new(big.Int).SetBytes(ret).Int64())
}

func TestDeployCodeReturnsRuntime(t *testing.T) {
	rt, err := returnWord(New().PushUint(99)).Bytes()
	require.NoError(t, err)

	init, err := DeployCode(rt)
	require.NoError(t, err)
	assert.Equal(t, rt, init[len(init)-len(rt):])

	ret, _, err := runtime.Execute(init, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, rt, ret)
}

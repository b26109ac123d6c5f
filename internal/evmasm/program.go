// Package evmasm builds EVM bytecode from opcodes with symbolic jump labels.
//
// Every label reference is encoded as a PUSH2, so offsets are known while
// the program is being written and resolved in a single patch pass.
package evmasm

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/vm"
)

// Errors.
var (
	ErrUnknownLabel   = errors.New("unknown label")
	ErrDuplicateLabel = errors.New("duplicate label")
	ErrPushTooWide    = errors.New("push value wider than 32 bytes")
	ErrCodeTooLarge   = errors.New("code exceeds PUSH2 range")
)

// Program is a bytecode builder.
type Program struct {
	code   []byte
	labels map[string]int
	refs   map[int]string // offset of the PUSH2 immediate -> label
	err    error
}

// New returns an empty program.
func New() *Program {
	return &Program{
		labels: make(map[string]int),
		refs:   make(map[int]string),
	}
}

// Op appends raw opcodes.
func (p *Program) Op(ops ...vm.OpCode) *Program {
	for _, op := range ops {
		p.code = append(p.code, byte(op))
	}
	return p
}

// Push appends the smallest PUSHn that holds b. Leading zero bytes are
// stripped; an empty or all-zero value is pushed as PUSH1 0x00.
func (p *Program) Push(b []byte) *Program {
	for len(b) > 1 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) == 0 {
		b = []byte{0}
	}
	if len(b) > 32 {
		p.fail(fmt.Errorf("%w: %d bytes", ErrPushTooWide, len(b)))
		return p
	}
	p.code = append(p.code, byte(vm.PUSH1)+byte(len(b)-1))
	p.code = append(p.code, b...)
	return p
}

// PushN appends a PUSHn with exactly n bytes, left padding b with zeros.
func (p *Program) PushN(n int, b []byte) *Program {
	if n < 1 || n > 32 || len(b) > n {
		p.fail(fmt.Errorf("%w: PUSH%d of %d bytes", ErrPushTooWide, n, len(b)))
		return p
	}
	p.code = append(p.code, byte(vm.PUSH1)+byte(n-1))
	p.code = append(p.code, make([]byte, n-len(b))...)
	p.code = append(p.code, b...)
	return p
}

// PushUint appends a push of v.
func (p *Program) PushUint(v uint64) *Program {
	return p.Push(new(big.Int).SetUint64(v).Bytes())
}

// Label marks the current offset with name and emits a JUMPDEST.
func (p *Program) Label(name string) *Program {
	if _, ok := p.labels[name]; ok {
		p.fail(fmt.Errorf("%w: %q", ErrDuplicateLabel, name))
		return p
	}
	p.labels[name] = len(p.code)
	return p.Op(vm.JUMPDEST)
}

// PushLabel pushes the offset of name, which may be defined later.
func (p *Program) PushLabel(name string) *Program {
	p.code = append(p.code, byte(vm.PUSH2))
	p.refs[len(p.code)] = name
	p.code = append(p.code, 0, 0)
	return p
}

// Jump jumps unconditionally to name.
func (p *Program) Jump(name string) *Program {
	return p.PushLabel(name).Op(vm.JUMP)
}

// JumpI jumps to name if the value on top of the stack is non-zero.
func (p *Program) JumpI(name string) *Program {
	return p.PushLabel(name).Op(vm.JUMPI)
}

// Bytes resolves every label reference and returns the bytecode.
func (p *Program) Bytes() ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	if len(p.code) > 0xffff {
		return nil, fmt.Errorf("%w: %d bytes", ErrCodeTooLarge, len(p.code))
	}
	out := make([]byte, len(p.code))
	copy(out, p.code)
	for at, name := range p.refs {
		dest, ok := p.labels[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, name)
		}
		out[at] = byte(dest >> 8)
		out[at+1] = byte(dest)
	}
	return out, nil
}

func (p *Program) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// DeployCode wraps runtime in init code that copies it to memory and
// returns it, so the deployed contract's code is exactly runtime.
func DeployCode(runtime []byte) ([]byte, error) {
	if len(runtime) > 0xffff {
		return nil, fmt.Errorf("%w: %d bytes", ErrCodeTooLarge, len(runtime))
	}
	size := []byte{byte(len(runtime) >> 8), byte(len(runtime))}

	// PUSH2 size, DUP1, PUSH2 offset, PUSH1 0, CODECOPY, PUSH1 0, RETURN.
	const initLen = 13
	p := New().
		PushN(2, size).
		Op(vm.DUP1).
		PushN(2, []byte{0, initLen}).
		PushN(1, nil).
		Op(vm.CODECOPY).
		PushN(1, nil).
		Op(vm.RETURN)
	init, err := p.Bytes()
	if err != nil {
		return nil, err
	}
	if len(init) != initLen {
		return nil, fmt.Errorf("init code is %d bytes, want %d", len(init), initLen)
	}
	return append(init, runtime...), nil
}

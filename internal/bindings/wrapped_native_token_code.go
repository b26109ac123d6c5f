package bindings

import (
	"encoding/hex"
	"fmt"

	"github.com/Karotoka/ERC-7521/internal/evmasm"
	"github.com/ethereum/go-ethereum/core/vm"
	"golang.org/x/crypto/sha3"
)

// Function signatures and events implemented by the wrapped native token.
const (
	sigDeposit     = "deposit()"
	sigWithdraw    = "withdraw(uint256)"
	sigTransfer    = "transfer(address,uint256)"
	sigBalanceOf   = "balanceOf(address)"
	sigTotalSupply = "totalSupply()"
	sigDecimals    = "decimals()"

	evDeposit    = "Deposit(address,uint256)"
	evWithdrawal = "Withdrawal(address,uint256)"
	evTransfer   = "Transfer(address,address,uint256)"
)

// Decimals reported by the token.
const tokenDecimals = 18

var addressMask = []byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

func keccak(s string) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(s))
	return h.Sum(nil)
}

// selector returns the 4-byte function selector for sig.
func selector(sig string) []byte { return keccak(sig)[:4] }

// wrappedNativeTokenRuntime assembles the deployed code of the token.
//
// Storage layout: the balance of an account lives in the slot whose key is
// the account address itself. totalSupply is the contract's own balance.
func wrappedNativeTokenRuntime() ([]byte, error) {
	p := evmasm.New()

	// Short calldata (plain value transfer) deposits.
	p.PushUint(4).Op(vm.CALLDATASIZE).Op(vm.LT).JumpI("deposit")
	p.PushUint(0).Op(vm.CALLDATALOAD).PushUint(224).Op(vm.SHR)

	dispatch := []struct{ sig, label string }{
		{sigDeposit, "deposit"},
		{sigWithdraw, "withdraw"},
		{sigTransfer, "transfer"},
		{sigBalanceOf, "balanceOf"},
		{sigTotalSupply, "totalSupply"},
		{sigDecimals, "decimals"},
	}
	for _, d := range dispatch {
		p.Op(vm.DUP1).PushN(4, selector(d.sig)).Op(vm.EQ).JumpI(d.label)
	}
	p.Jump("revert")

	// deposit(): balance[caller] += callvalue; emit Deposit(caller, callvalue)
	p.Label("deposit")
	p.Op(vm.CALLER, vm.SLOAD, vm.CALLVALUE, vm.ADD, vm.CALLER, vm.SSTORE)
	p.Op(vm.CALLVALUE).PushUint(0).Op(vm.MSTORE)
	p.Op(vm.CALLER).PushN(32, keccak(evDeposit)).PushUint(32).PushUint(0).Op(vm.LOG2)
	p.Op(vm.STOP)

	// withdraw(wad)
	p.Label("withdraw")
	nonPayable(p)
	p.PushUint(4).Op(vm.CALLDATALOAD) // [wad]
	p.Op(vm.DUP1, vm.CALLER, vm.SLOAD, vm.LT).JumpI("revert")
	p.Op(vm.DUP1, vm.CALLER, vm.SLOAD, vm.SUB, vm.CALLER, vm.SSTORE)
	// call(gas, caller, wad, 0, 0, 0, 0)
	p.PushUint(0).PushUint(0).PushUint(0).PushUint(0).Op(vm.DUP5, vm.CALLER, vm.GAS, vm.CALL)
	p.Op(vm.ISZERO).JumpI("revert")
	p.PushUint(0).Op(vm.MSTORE)
	p.Op(vm.CALLER).PushN(32, keccak(evWithdrawal)).PushUint(32).PushUint(0).Op(vm.LOG2)
	p.Op(vm.STOP)

	// transfer(dst, wad) returns (bool)
	p.Label("transfer")
	nonPayable(p)
	p.PushUint(36).Op(vm.CALLDATALOAD)                  // [wad]
	p.PushUint(4).Op(vm.CALLDATALOAD).Push(addressMask) // [wad, dst, mask]
	p.Op(vm.AND)                                        // [wad, dst]
	p.Op(vm.DUP2, vm.CALLER, vm.SLOAD, vm.LT).JumpI("revert")
	p.Op(vm.DUP2, vm.CALLER, vm.SLOAD, vm.SUB, vm.CALLER, vm.SSTORE)
	p.Op(vm.DUP2, vm.DUP2, vm.SLOAD, vm.ADD, vm.DUP2, vm.SSTORE)
	p.Op(vm.DUP2).PushUint(0).Op(vm.MSTORE)
	p.Op(vm.CALLER).PushN(32, keccak(evTransfer)).PushUint(32).PushUint(0).Op(vm.LOG3)
	p.PushUint(1)
	returnWord(p)

	// balanceOf(owner) returns (uint256)
	p.Label("balanceOf")
	nonPayable(p)
	p.PushUint(4).Op(vm.CALLDATALOAD).Push(addressMask).Op(vm.AND, vm.SLOAD)
	returnWord(p)

	// totalSupply() returns (uint256)
	p.Label("totalSupply")
	nonPayable(p)
	p.Op(vm.SELFBALANCE)
	returnWord(p)

	// decimals() returns (uint8)
	p.Label("decimals")
	nonPayable(p)
	p.PushUint(tokenDecimals)
	returnWord(p)

	p.Label("revert")
	p.PushUint(0).Op(vm.DUP1, vm.REVERT)

	return p.Bytes()
}

func nonPayable(p *evmasm.Program) {
	p.Op(vm.CALLVALUE).JumpI("revert")
}

// returnWord returns the value on top of the stack as a single ABI word.
func returnWord(p *evmasm.Program) {
	p.PushUint(0).Op(vm.MSTORE).PushUint(32).PushUint(0).Op(vm.RETURN)
}

// wrappedNativeTokenBin returns the hex-encoded creation code.
func wrappedNativeTokenBin() string {
	rt, err := wrappedNativeTokenRuntime()
	if err != nil {
		panic(fmt.Sprintf("assembling wrapped native token: %v", err))
	}
	code, err := evmasm.DeployCode(rt)
	if err != nil {
		panic(fmt.Sprintf("assembling wrapped native token: %v", err))
	}
	return "0x" + hex.EncodeToString(code)
}

// Package bindings holds typed Go bindings for the contracts used by the
// test utilities. The layout follows abigen's v1 output so call encoding
// stays behind generated-style typed methods.
package bindings

import (
	"errors"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// Reference imports to suppress errors if they are not otherwise used.
var (
	_ = errors.New
	_ = big.NewInt
	_ = ethereum.NotFound
	_ = common.Big1
	_ = types.BloomLookup
	_ = event.NewSubscription
	_ = abi.ConvertType
)

const testWrappedNativeTokenABI = `[
{"type":"fallback","stateMutability":"payable"},
{"type":"function","name":"deposit","inputs":[],"outputs":[],"stateMutability":"payable"},
{"type":"function","name":"withdraw","inputs":[{"internalType":"uint256","name":"wad","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
{"type":"function","name":"transfer","inputs":[{"internalType":"address","name":"dst","type":"address"},{"internalType":"uint256","name":"wad","type":"uint256"}],"outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"nonpayable"},
{"type":"function","name":"balanceOf","inputs":[{"internalType":"address","name":"","type":"address"}],"outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view"},
{"type":"function","name":"totalSupply","inputs":[],"outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view"},
{"type":"function","name":"decimals","inputs":[],"outputs":[{"internalType":"uint8","name":"","type":"uint8"}],"stateMutability":"view"},
{"type":"event","name":"Deposit","anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"dst","type":"address"},{"indexed":false,"internalType":"uint256","name":"wad","type":"uint256"}]},
{"type":"event","name":"Withdrawal","anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"src","type":"address"},{"indexed":false,"internalType":"uint256","name":"wad","type":"uint256"}]},
{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"src","type":"address"},{"indexed":true,"internalType":"address","name":"dst","type":"address"},{"indexed":false,"internalType":"uint256","name":"wad","type":"uint256"}]}
]`

// TestWrappedNativeTokenMetaData contains all meta data concerning the TestWrappedNativeToken contract.
var TestWrappedNativeTokenMetaData = &bind.MetaData{
	ABI: testWrappedNativeTokenABI,
	Bin: wrappedNativeTokenBin(),
}

// DeployTestWrappedNativeToken deploys a new Ethereum contract, binding an instance of TestWrappedNativeToken to it.
func DeployTestWrappedNativeToken(auth *bind.TransactOpts, backend bind.ContractBackend) (common.Address, *types.Transaction, *TestWrappedNativeToken, error) {
	parsed, err := TestWrappedNativeTokenMetaData.GetAbi()
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	if parsed == nil {
		return common.Address{}, nil, nil, errors.New("GetABI returned nil")
	}

	address, tx, contract, err := bind.DeployContract(auth, *parsed, common.FromHex(TestWrappedNativeTokenMetaData.Bin), backend)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	return address, tx, &TestWrappedNativeToken{TestWrappedNativeTokenCaller: TestWrappedNativeTokenCaller{contract: contract}, TestWrappedNativeTokenTransactor: TestWrappedNativeTokenTransactor{contract: contract}, TestWrappedNativeTokenFilterer: TestWrappedNativeTokenFilterer{contract: contract}}, nil
}

// TestWrappedNativeToken is a Go binding around the wrapped native token contract.
type TestWrappedNativeToken struct {
	TestWrappedNativeTokenCaller     // Read-only binding to the contract
	TestWrappedNativeTokenTransactor // Write-only binding to the contract
	TestWrappedNativeTokenFilterer   // Log filterer for contract events
}

// TestWrappedNativeTokenCaller is a read-only Go binding around the contract.
type TestWrappedNativeTokenCaller struct {
	contract *bind.BoundContract
}

// TestWrappedNativeTokenTransactor is a write-only Go binding around the contract.
type TestWrappedNativeTokenTransactor struct {
	contract *bind.BoundContract
}

// TestWrappedNativeTokenFilterer is a log filtering Go binding around the contract events.
type TestWrappedNativeTokenFilterer struct {
	contract *bind.BoundContract
}

// TestWrappedNativeTokenSession is a binding with pre-set call and transact options.
type TestWrappedNativeTokenSession struct {
	Contract     *TestWrappedNativeToken
	CallOpts     bind.CallOpts
	TransactOpts bind.TransactOpts
}

// NewTestWrappedNativeToken creates a new instance of TestWrappedNativeToken, bound to a specific deployed contract.
func NewTestWrappedNativeToken(address common.Address, backend bind.ContractBackend) (*TestWrappedNativeToken, error) {
	contract, err := bindTestWrappedNativeToken(address, backend, backend, backend)
	if err != nil {
		return nil, err
	}
	return &TestWrappedNativeToken{TestWrappedNativeTokenCaller: TestWrappedNativeTokenCaller{contract: contract}, TestWrappedNativeTokenTransactor: TestWrappedNativeTokenTransactor{contract: contract}, TestWrappedNativeTokenFilterer: TestWrappedNativeTokenFilterer{contract: contract}}, nil
}

// NewTestWrappedNativeTokenCaller creates a new read-only instance of TestWrappedNativeToken.
func NewTestWrappedNativeTokenCaller(address common.Address, caller bind.ContractCaller) (*TestWrappedNativeTokenCaller, error) {
	contract, err := bindTestWrappedNativeToken(address, caller, nil, nil)
	if err != nil {
		return nil, err
	}
	return &TestWrappedNativeTokenCaller{contract: contract}, nil
}

func bindTestWrappedNativeToken(address common.Address, caller bind.ContractCaller, transactor bind.ContractTransactor, filterer bind.ContractFilterer) (*bind.BoundContract, error) {
	parsed, err := TestWrappedNativeTokenMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(address, *parsed, caller, transactor, filterer), nil
}

// BalanceOf is a free data retrieval call binding the contract method 0x70a08231.
//
// Solidity: function balanceOf(address ) view returns(uint256)
func (_T *TestWrappedNativeTokenCaller) BalanceOf(opts *bind.CallOpts, arg0 common.Address) (*big.Int, error) {
	var out []interface{}
	err := _T.contract.Call(opts, &out, "balanceOf", arg0)
	if err != nil {
		return new(big.Int), err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// TotalSupply is a free data retrieval call binding the contract method 0x18160ddd.
//
// Solidity: function totalSupply() view returns(uint256)
func (_T *TestWrappedNativeTokenCaller) TotalSupply(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	err := _T.contract.Call(opts, &out, "totalSupply")
	if err != nil {
		return new(big.Int), err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// Decimals is a free data retrieval call binding the contract method 0x313ce567.
//
// Solidity: function decimals() view returns(uint8)
func (_T *TestWrappedNativeTokenCaller) Decimals(opts *bind.CallOpts) (uint8, error) {
	var out []interface{}
	err := _T.contract.Call(opts, &out, "decimals")
	if err != nil {
		return 0, err
	}
	return *abi.ConvertType(out[0], new(uint8)).(*uint8), nil
}

// Deposit is a paid mutator transaction binding the contract method 0xd0e30db0.
//
// Solidity: function deposit() payable returns()
func (_T *TestWrappedNativeTokenTransactor) Deposit(opts *bind.TransactOpts) (*types.Transaction, error) {
	return _T.contract.Transact(opts, "deposit")
}

// Withdraw is a paid mutator transaction binding the contract method 0x2e1a7d4d.
//
// Solidity: function withdraw(uint256 wad) returns()
func (_T *TestWrappedNativeTokenTransactor) Withdraw(opts *bind.TransactOpts, wad *big.Int) (*types.Transaction, error) {
	return _T.contract.Transact(opts, "withdraw", wad)
}

// Transfer is a paid mutator transaction binding the contract method 0xa9059cbb.
//
// Solidity: function transfer(address dst, uint256 wad) returns(bool)
func (_T *TestWrappedNativeTokenTransactor) Transfer(opts *bind.TransactOpts, dst common.Address, wad *big.Int) (*types.Transaction, error) {
	return _T.contract.Transact(opts, "transfer", dst, wad)
}

// Fallback is a paid mutator transaction binding the contract fallback function.
//
// Solidity: fallback() payable returns()
func (_T *TestWrappedNativeTokenTransactor) Fallback(opts *bind.TransactOpts, calldata []byte) (*types.Transaction, error) {
	return _T.contract.RawTransact(opts, calldata)
}

// BalanceOf is a free data retrieval call binding the contract method 0x70a08231.
func (_T *TestWrappedNativeTokenSession) BalanceOf(arg0 common.Address) (*big.Int, error) {
	return _T.Contract.BalanceOf(&_T.CallOpts, arg0)
}

// Deposit is a paid mutator transaction binding the contract method 0xd0e30db0.
func (_T *TestWrappedNativeTokenSession) Deposit() (*types.Transaction, error) {
	return _T.Contract.Deposit(&_T.TransactOpts)
}

// Transfer is a paid mutator transaction binding the contract method 0xa9059cbb.
func (_T *TestWrappedNativeTokenSession) Transfer(dst common.Address, wad *big.Int) (*types.Transaction, error) {
	return _T.Contract.Transfer(&_T.TransactOpts, dst, wad)
}

// TestWrappedNativeTokenDeposit represents a Deposit event raised by the contract.
type TestWrappedNativeTokenDeposit struct {
	Dst common.Address
	Wad *big.Int
	Raw types.Log // Blockchain specific contextual infos
}

// ParseDeposit is a log parse operation binding the contract event 0xe1fffcc4923d04b559f4d29a8bfc6cda04eb5b0d3c460751c2402c5c5cc9109c.
//
// Solidity: event Deposit(address indexed dst, uint256 wad)
func (_T *TestWrappedNativeTokenFilterer) ParseDeposit(log types.Log) (*TestWrappedNativeTokenDeposit, error) {
	event := new(TestWrappedNativeTokenDeposit)
	if err := _T.contract.UnpackLog(event, "Deposit", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

// TestWrappedNativeTokenWithdrawal represents a Withdrawal event raised by the contract.
type TestWrappedNativeTokenWithdrawal struct {
	Src common.Address
	Wad *big.Int
	Raw types.Log
}

// ParseWithdrawal is a log parse operation binding the contract event Withdrawal.
//
// Solidity: event Withdrawal(address indexed src, uint256 wad)
func (_T *TestWrappedNativeTokenFilterer) ParseWithdrawal(log types.Log) (*TestWrappedNativeTokenWithdrawal, error) {
	event := new(TestWrappedNativeTokenWithdrawal)
	if err := _T.contract.UnpackLog(event, "Withdrawal", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

// TestWrappedNativeTokenTransfer represents a Transfer event raised by the contract.
type TestWrappedNativeTokenTransfer struct {
	Src common.Address
	Dst common.Address
	Wad *big.Int
	Raw types.Log
}

// ParseTransfer is a log parse operation binding the contract event 0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef.
//
// Solidity: event Transfer(address indexed src, address indexed dst, uint256 wad)
func (_T *TestWrappedNativeTokenFilterer) ParseTransfer(log types.Log) (*TestWrappedNativeTokenTransfer, error) {
	event := new(TestWrappedNativeTokenTransfer)
	if err := _T.contract.UnpackLog(event, "Transfer", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

// FilterTransfer returns the Transfer events matching the given source and
// destination filters in the block range of opts.
//
// Solidity: event Transfer(address indexed src, address indexed dst, uint256 wad)
func (_T *TestWrappedNativeTokenFilterer) FilterTransfer(opts *bind.FilterOpts, src []common.Address, dst []common.Address) ([]*TestWrappedNativeTokenTransfer, error) {
	var srcRule []interface{}
	for _, srcItem := range src {
		srcRule = append(srcRule, srcItem)
	}
	var dstRule []interface{}
	for _, dstItem := range dst {
		dstRule = append(dstRule, dstItem)
	}

	logs, sub, err := _T.contract.FilterLogs(opts, "Transfer", srcRule, dstRule)
	if err != nil {
		return nil, err
	}
	defer sub.Unsubscribe()

	var out []*TestWrappedNativeTokenTransfer
	errc := sub.Err()
	for {
		var log types.Log
		if errc == nil {
			// The logs channel is never closed; once the producer has
			// finished, an empty channel means everything was read.
			select {
			case log = <-logs:
			default:
				return out, nil
			}
		} else {
			select {
			case log = <-logs:
			case err, ok := <-errc:
				if ok && err != nil {
					return nil, err
				}
				errc = nil
				continue
			}
		}
		ev, err := _T.ParseTransfer(log)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
}

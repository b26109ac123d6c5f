package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// Kind tells at which point a transaction failed.
type Kind int

const (
	// KindSubmission: the client or node refused the transaction before it
	// was broadcast (signing, nonce, funds, transport).
	KindSubmission Kind = iota + 1
	// KindConfirmation: the transaction was broadcast but no receipt was
	// obtained.
	KindConfirmation
	// KindExecution: the contract call reverted, either on chain or during
	// gas estimation.
	KindExecution
)

func (k Kind) String() string {
	switch k {
	case KindSubmission:
		return "submission"
	case KindConfirmation:
		return "confirmation"
	case KindExecution:
		return "execution"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrReverted matches every KindExecution error via errors.Is.
var ErrReverted = errors.New("execution reverted")

// TxError describes a failed send/await round trip.
type TxError struct {
	Kind   Kind
	Op     string      // operation name, e.g. "deposit"
	Hash   common.Hash // zero when nothing was broadcast
	Reason string      // decoded revert reason, if the node returned one
	Err    error
}

func (e *TxError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s failed", e.Op, e.Kind)
	if e.Hash != (common.Hash{}) {
		fmt.Fprintf(&sb, " (tx %s)", e.Hash.Hex())
	}
	if e.Reason != "" {
		fmt.Fprintf(&sb, ": reverted: %s", e.Reason)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *TxError) Unwrap() error { return e.Err }

// Is reports execution failures as ErrReverted.
func (e *TxError) Is(target error) bool {
	return target == ErrReverted && e.Kind == KindExecution
}

// IsKind reports whether err is a *TxError of the given kind.
func IsKind(err error, kind Kind) bool {
	var txErr *TxError
	return errors.As(err, &txErr) && txErr.Kind == kind
}

// classifySubmit turns an error from sending (including gas estimation)
// into a TxError. Estimation reverts count as execution failures.
func classifySubmit(op string, err error) *TxError {
	if isRevert(err) {
		return &TxError{Kind: KindExecution, Op: op, Reason: revertReason(err), Err: err}
	}
	return &TxError{Kind: KindSubmission, Op: op, Err: err}
}

func isRevert(err error) bool {
	if err == nil {
		return false
	}
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
		return true
	}
	return strings.Contains(err.Error(), "execution reverted")
}

// revertReason extracts an Error(string) reason from the revert data the
// node attached to err. Empty when there is none.
func revertReason(err error) string {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return ""
	}
	var data []byte
	switch d := dataErr.ErrorData().(type) {
	case string:
		b, decErr := hexutil.Decode(d)
		if decErr != nil {
			return ""
		}
		data = b
	case []byte:
		data = d
	default:
		return ""
	}
	reason, unpackErr := abi.UnpackRevert(data)
	if unpackErr != nil {
		return ""
	}
	return reason
}

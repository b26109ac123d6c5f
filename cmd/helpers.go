package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/Karotoka/ERC-7521/internal/chain"
	"github.com/Karotoka/ERC-7521/internal/contract"
	"github.com/Karotoka/ERC-7521/internal/ui"
	"github.com/Karotoka/ERC-7521/internal/wrappers"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mattn/go-isatty"
)

// tokenDecimals is used to parse and print amounts; the token always
// reports 18.
const tokenDecimals = 18

var tokenFlag string

// errorLine renders err for the terminal, calling out reverts.
func errorLine(err error) string {
	var txErr *chain.TxError
	if errors.As(err, &txErr) {
		msg := fmt.Sprintf("%s failed at %s stage", txErr.Op, txErr.Kind)
		if txErr.Hash != (common.Hash{}) {
			msg += " (tx " + txErr.Hash.Hex() + ")"
		}
		switch {
		case txErr.Reason != "":
			msg += ": reverted: " + txErr.Reason
		case txErr.Kind == chain.KindExecution:
			msg += ": reverted"
		}
		if txErr.Err != nil {
			msg += "\n  " + txErr.Err.Error()
		}
		return ui.Err(msg)
	}
	return ui.Err(err.Error())
}

// withSpinner runs fn while showing msg, if stderr is a terminal.
func withSpinner(msg string, fn func() error) error {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return fn()
	}
	spin := ui.NewSpinner(msg)
	spin.Start()
	err := fn()
	spin.Stop()
	return err
}

// resolveToken maps --token, a registered name or an address, to the token
// address on the selected network.
func resolveToken() (common.Address, error) {
	reg, err := openRegistry()
	if err != nil {
		return common.Address{}, err
	}
	addr, err := reg.Resolve(tokenFlag, network())
	if errors.Is(err, contract.ErrContractNotFound) {
		return common.Address{}, fmt.Errorf("%w (deploy one with `wnt deploy` or pass --token <address>)", err)
	}
	return addr, err
}

// openToken connects with the signing wallet and binds the selected token.
func openToken(ctx context.Context) (*wrappers.TestWrappedNativeTokenContract, error) {
	addr, err := resolveToken()
	if err != nil {
		return nil, err
	}
	client, err := connect(ctx)
	if err != nil {
		return nil, err
	}
	token, err := wrappers.Bind(addr, client)
	if err != nil {
		client.Close()
		return nil, err
	}
	return token, nil
}

// parseAmount parses a token amount argument.
func parseAmount(s string) (*big.Int, error) {
	return ui.ParseUnits(s, tokenDecimals)
}

// amountString renders a base-unit amount with its wei value.
func amountString(v *big.Int) string {
	return fmt.Sprintf("%s (%s wei)", ui.FormatUnits(v, tokenDecimals), v.String())
}

// parseAddress accepts a 0x address or a wallet name.
func parseAddress(s string) (common.Address, error) {
	if common.IsHexAddress(s) {
		return common.HexToAddress(s), nil
	}
	w, err := newWalletManager().Get(s)
	if err != nil {
		return common.Address{}, fmt.Errorf("%q is neither an address nor a known wallet: %w", s, err)
	}
	return w.CommonAddress(), nil
}

func printBlock(out io.Writer, title string, pairs [][2]string) {
	fmt.Fprintln(out, ui.KeyValueBlock(title, pairs))
}

package cmd

import (
	"github.com/Karotoka/ERC-7521/internal/ui"
	"github.com/Karotoka/ERC-7521/internal/wrappers"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [wallet-name-or-address]",
	Short: "Show wrapped and native balances",
	Long: `Show the token balance and native balance of an address or wallet.
Without an argument the signing wallet (--wallet or the default) is used.

Examples:
  wnt balance
  wnt balance bob
  wnt balance 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 --token weth`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, label, err := balanceTarget(args)
		if err != nil {
			return err
		}
		tokenAddr, err := resolveToken()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		client, err := connectReadOnly(ctx)
		if err != nil {
			return err
		}
		defer client.Close()
		token, err := wrappers.Bind(tokenAddr, client)
		if err != nil {
			return err
		}

		wrapped, err := token.BalanceOf(ctx, owner)
		if err != nil {
			return err
		}
		native, err := client.BalanceAt(ctx, owner)
		if err != nil {
			return err
		}
		supply, err := token.TotalSupply(ctx)
		if err != nil {
			return err
		}

		printBlock(cmd.OutOrStdout(), "Balance", [][2]string{
			{"Account", label},
			{"Network", ui.Network(network())},
			{"Token", ui.Addr(tokenAddr.Hex())},
			{"Wrapped", ui.Val(amountString(wrapped))},
			{"Native", ui.Val(amountString(native))},
			{"Total supply", amountString(supply)},
		})
		return nil
	},
}

// balanceTarget resolves the positional argument, falling back to the
// signing wallet.
func balanceTarget(args []string) (common.Address, string, error) {
	if len(args) == 1 && common.IsHexAddress(args[0]) {
		addr := common.HexToAddress(args[0])
		return addr, ui.Addr(addr.Hex()), nil
	}
	name := signingWalletName()
	if len(args) == 1 {
		name = args[0]
	}
	w, err := newWalletManager().Resolve(name)
	if err != nil {
		return common.Address{}, "", err
	}
	return w.CommonAddress(), w.Name + " " + ui.Meta("("+w.Address+")"), nil
}

func init() {
	balanceCmd.Flags().StringVar(&tokenFlag, "token", "", "registered token name or address (default: \"wnt\")")
}

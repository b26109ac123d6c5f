package cmd

import (
	"fmt"

	"github.com/Karotoka/ERC-7521/internal/ui"
	"github.com/spf13/cobra"
)

var depositCmd = &cobra.Command{
	Use:   "deposit <amount>",
	Short: "Wrap native currency into tokens",
	Long: `Send <amount> of native currency to the token's deposit function and
credit the same amount of tokens to the signing wallet.

Amounts are in whole tokens (18 decimals) unless suffixed with "wei" or
given as 0x hex.

Examples:
  wnt deposit 1.5
  wnt deposit 1000wei --token weth`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		token, err := openToken(ctx)
		if err != nil {
			return err
		}
		defer token.Client().Close()

		err = withSpinner("Depositing "+ui.FormatUnits(amount, tokenDecimals)+"...", func() error {
			return token.Deposit(ctx, amount)
		})
		if err != nil {
			return err
		}
		bal, err := token.BalanceOf(ctx, token.Client().Address())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Success("Deposited "+amountString(amount)))
		fmt.Fprintln(out, ui.Info("Balance of "+ui.Addr(token.Client().Address().Hex())+": "+ui.Val(amountString(bal))))
		return nil
	},
}

func init() {
	depositCmd.Flags().StringVar(&tokenFlag, "token", "", "registered token name or address (default: \"wnt\")")
}

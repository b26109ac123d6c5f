package cmd

import (
	"fmt"

	"github.com/Karotoka/ERC-7521/internal/ui"
	"github.com/spf13/cobra"
)

var transferCmd = &cobra.Command{
	Use:   "transfer <to> <amount>",
	Short: "Transfer wrapped tokens",
	Long: `Move <amount> of tokens from the signing wallet to <to>, which may be
an address or a wallet name. Fails if the sender's balance is too low.

Examples:
  wnt transfer 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 0.25
  wnt transfer bob 400wei`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		token, err := openToken(ctx)
		if err != nil {
			return err
		}
		defer token.Client().Close()

		err = withSpinner("Transferring "+ui.FormatUnits(amount, tokenDecimals)+"...", func() error {
			return token.Transfer(ctx, to, amount)
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Transferred %s to %s", amountString(amount), ui.Addr(to.Hex()))))
		return nil
	},
}

func init() {
	transferCmd.Flags().StringVar(&tokenFlag, "token", "", "registered token name or address (default: \"wnt\")")
}

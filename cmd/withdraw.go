package cmd

import (
	"fmt"

	"github.com/Karotoka/ERC-7521/internal/ui"
	"github.com/spf13/cobra"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <amount>",
	Short: "Unwrap tokens back into native currency",
	Args:  cobra.ExactArgs(1),
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

		err = withSpinner("Withdrawing "+ui.FormatUnits(amount, tokenDecimals)+"...", func() error {
			return token.Withdraw(ctx, amount)
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Withdrew "+amountString(amount)))
		return nil
	},
}

func init() {
	withdrawCmd.Flags().StringVar(&tokenFlag, "token", "", "registered token name or address (default: \"wnt\")")
}

package cmd

import (
	"fmt"

	"github.com/Karotoka/ERC-7521/internal/chain"
	"github.com/Karotoka/ERC-7521/internal/ui"
	"github.com/Karotoka/ERC-7521/internal/wrappers"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var (
	devnetDeposit  string
	devnetTransfer string
)

var devnetCmd = &cobra.Command{
	Use:   "devnet",
	Short: "Run deploy, deposit and transfer on an in-process chain",
	Long: `Start a throwaway simulated chain with two funded accounts, deploy the
token from the first, deposit --deposit, transfer --transfer to the second
and print the resulting balances. Nothing touches the network or the
config dir.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deposit, err := parseAmount(devnetDeposit)
		if err != nil {
			return fmt.Errorf("--deposit: %w", err)
		}
		transfer, err := parseAmount(devnetTransfer)
		if err != nil {
			return fmt.Errorf("--transfer: %w", err)
		}

		sim, err := chain.NewSimulated(chain.WithAccounts(2))
		if err != nil {
			return err
		}
		defer sim.Close()

		alice, err := sim.Client(0)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		token, err := wrappers.Deploy(ctx, alice)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ui.Success("Deployed at "+ui.Addr(token.Address().Hex())))

		if err := token.Deposit(ctx, deposit); err != nil {
			return err
		}
		fmt.Fprintln(out, ui.Success("Deposited "+amountString(deposit)))

		bob := sim.Address(1)
		if err := token.Transfer(ctx, bob, transfer); err != nil {
			return err
		}
		fmt.Fprintln(out, ui.Success("Transferred "+amountString(transfer)+" to "+ui.Addr(bob.Hex())))

		t := ui.NewTable([]ui.Column{
			{Title: "Account"},
			{Title: "Address", Width: 42},
			{Title: "Wrapped (wei)"},
			{Title: "Native"},
		})
		for i, name := range []string{"alice", "bob"} {
			row, err := devnetRow(cmd, token, name, sim.Address(i))
			if err != nil {
				return err
			}
			t.AddRow(row)
		}
		fmt.Fprintln(out, t.Render())

		supply, err := token.TotalSupply(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ui.Info("Total supply: "+ui.Val(amountString(supply))))
		return nil
	},
}

func devnetRow(cmd *cobra.Command, token *wrappers.TestWrappedNativeTokenContract, name string, addr common.Address) (ui.Row, error) {
	ctx := cmd.Context()
	wrapped, err := token.BalanceOf(ctx, addr)
	if err != nil {
		return nil, err
	}
	native, err := token.Client().BalanceAt(ctx, addr)
	if err != nil {
		return nil, err
	}
	return ui.Row{ui.Val(name), ui.Addr(addr.Hex()), wrapped.String(), ui.FormatUnits(native, tokenDecimals)}, nil
}

func init() {
	devnetCmd.Flags().StringVar(&devnetDeposit, "deposit", "1000wei", "amount alice deposits")
	devnetCmd.Flags().StringVar(&devnetTransfer, "transfer", "400wei", "amount alice transfers to bob")
}

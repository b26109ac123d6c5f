package cmd

import (
	"fmt"

	"github.com/Karotoka/ERC-7521/internal/contract"
	"github.com/Karotoka/ERC-7521/internal/ui"
	"github.com/Karotoka/ERC-7521/internal/wrappers"
	"github.com/spf13/cobra"
)

var deployName string

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy a wrapped native token contract",
	Long: `Deploy a fresh wrapped native token from the selected wallet and record
it in the deployment registry under --name for the selected network.

Examples:
  wnt deploy
  wnt deploy --name weth --network sepolia --wallet deployer`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		client, err := connect(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		var token *wrappers.TestWrappedNativeTokenContract
		err = withSpinner("Deploying wrapped native token...", func() error {
			var err error
			token, err = wrappers.Deploy(ctx, client)
			return err
		})
		if err != nil {
			return err
		}

		entry, err := reg.Record(deployName, network(), client.ChainID().Uint64(), token.Address(), client.Address(), token.DeployTxHash())
		if err != nil {
			return err
		}
		if err := reg.Save(); err != nil {
			return fmt.Errorf("saving registry: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Success("Deployed "+entry.Name))
		printBlock(out, "Deployment", [][2]string{
			{"Name", entry.Name},
			{"Network", ui.Network(entry.Network)},
			{"Chain ID", fmt.Sprint(entry.ChainID)},
			{"Address", ui.Addr(entry.Address)},
			{"Deployer", ui.Addr(entry.Deployer)},
			{"Tx", entry.TxHash},
		})
		return nil
	},
}

func init() {
	deployCmd.Flags().StringVar(&deployName, "name", contract.DefaultName, "registry name for the deployment")
}

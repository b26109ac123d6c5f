package cmd

import (
	"fmt"

	"github.com/Karotoka/ERC-7521/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded token deployments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		entries := reg.All()
		if len(entries) == 0 {
			fmt.Fprintln(out, ui.Info("No deployments recorded yet."))
			fmt.Fprintln(out, ui.Meta("Deploy one with: wnt deploy"))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Name"},
			{Title: "Network"},
			{Title: "Chain"},
			{Title: "Address", Width: 42},
			{Title: "Deployed"},
		})
		for _, e := range entries {
			t.AddRow(ui.Row{
				ui.Val(e.Name),
				ui.Network(e.Network),
				fmt.Sprint(e.ChainID),
				ui.Addr(e.Address),
				ui.Meta(e.DeployedAt),
			})
		}
		fmt.Fprintln(out, t.Render())
		return nil
	},
}

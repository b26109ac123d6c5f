package cmd

import (
	"fmt"
	"time"

	"github.com/Karotoka/ERC-7521/internal/rpc"
	"github.com/Karotoka/ERC-7521/internal/ui"
	"github.com/spf13/cobra"
)

var pingTimeout time.Duration

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check every configured RPC endpoint",
	Long: `Probe rpc_url and every networks.<name> endpoint in parallel and show
chain id, head block and latency. The fastest healthy endpoint is marked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targets := []rpc.Target{{Name: "(rpc_url)", URL: cfg.RPCURL}}
		for _, name := range cfg.NetworkNames() {
			targets = append(targets, rpc.Target{Name: name, URL: cfg.Networks[name]})
		}

		var results []rpc.Result
		withSpinner(fmt.Sprintf("Pinging %d endpoint(s)...", len(targets)), func() error { //nolint:errcheck
			results = rpc.Probe(cmd.Context(), targets, pingTimeout)
			return nil
		})
		best, bestErr := rpc.Fastest(results)

		t := ui.NewTable([]ui.Column{
			{Title: "Network"},
			{Title: "URL", Width: 40},
			{Title: "Chain"},
			{Title: "Block"},
			{Title: "Latency"},
			{Title: ""},
		})
		for i := range results {
			r := &results[i]
			if !r.Healthy() {
				t.AddRow(ui.Row{ui.Network(r.Name), r.URL, "—", "—", "—", ui.StyleError.Render(r.Err.Error())})
				continue
			}
			mark := ""
			if r == best {
				mark = ui.StyleSuccess.Render("fastest")
			}
			t.AddRow(ui.Row{
				ui.Network(r.Name),
				r.URL,
				r.ChainID.String(),
				fmt.Sprint(r.BlockNumber),
				r.Latency.Round(time.Millisecond).String(),
				mark,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return bestErr
	},
}

func init() {
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 5*time.Second, "per-endpoint timeout")
}

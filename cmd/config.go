package cmd

import (
	"fmt"

	"github.com/Karotoka/ERC-7521/internal/config"
	"github.com/Karotoka/ERC-7521/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs := [][2]string{{"config dir", ui.Meta(cfg.Dir())}}
		for _, k := range config.Keys {
			v, err := cfg.Get(k)
			if err != nil {
				return err
			}
			if v == "" {
				v = ui.Meta("(unset)")
			}
			pairs = append(pairs, [2]string{k, v})
		}
		for _, name := range cfg.NetworkNames() {
			pairs = append(pairs, [2]string{"networks." + name, cfg.Networks[name]})
		}
		pairs = append(pairs, [2]string{"effective rpc", ui.Network(rpcURL())})
		printBlock(cmd.OutOrStdout(), "Config", pairs)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Long: `Set a config value and save it.

Keys:
  rpc_url                RPC endpoint used when no network matches
  default_wallet         wallet used when --wallet is not given
  default_network        network used when --network is not given
  wait_timeout_seconds   receipt wait limit, 0 waits forever
  networks.<name>        RPC endpoint for a named network ("" removes it)

Examples:
  wnt config set rpc_url http://127.0.0.1:8545
  wnt config set networks.sepolia https://rpc.sepolia.org`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := cfg.Set(key, value); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("%s = %q", key, value)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/Karotoka/ERC-7521/internal/ui"
	"github.com/Karotoka/ERC-7521/internal/wallet"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var walletKeyFlag string

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage signing and watch-only wallets",
}

var walletImportCmd = &cobra.Command{
	Use:   "import <name> --key <private-key>",
	Short: "Import a signing wallet from a private key",
	Long: `Import a hex private key as a signing wallet. The key is stored in the
OS keychain (or an encrypted file under the config dir) and only the
address is written to wallets.json.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if walletKeyFlag == "" {
			return fmt.Errorf("--key is required")
		}
		w, err := newWalletManager().AddWithKey(args[0], walletKeyFlag)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Signing wallet %q added: %s", w.Name, ui.Addr(w.Address))))
		fmt.Fprintln(out, ui.Meta("Set as default with: wnt wallet default "+w.Name))
		return nil
	},
}

var walletAddCmd = &cobra.Command{
	Use:   "add <name> <address>",
	Short: "Add a watch-only wallet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newWalletManager()
		if err := mgr.Add(args[0], args[1]); err != nil {
			return err
		}
		w, err := mgr.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Watch-only wallet %q added: %s", w.Name, ui.Addr(w.Address))))
		return nil
	},
}

var walletGenerateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Generate a new signing wallet",
	Long: `Generate a fresh keypair and store the private key in the keystore.

The private key is printed once so it can be backed up.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, hexKey, err := newWalletManager().Generate(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printBlock(out, "New wallet", [][2]string{
			{"Name", w.Name},
			{"Address", ui.Addr(w.Address)},
			{"Private key", ui.Val(hexKey)},
		})
		fmt.Fprintln(out, ui.Warn("Save the private key now. It is not shown again."))
		return nil
	},
}

var walletListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wallets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		wallets, err := newWalletManager().List()
		if err != nil {
			return err
		}
		if len(wallets) == 0 {
			fmt.Fprintln(out, ui.Info("No wallets configured yet."))
			fmt.Fprintln(out, ui.Meta("Add one with: wnt wallet import <name> --key <private-key>"))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Name"},
			{Title: "Address", Width: 42},
			{Title: "Type"},
			{Title: "Default"},
		})
		for _, w := range wallets {
			def := ""
			if isDefaultWallet(w) {
				def = ui.StyleSuccess.Render("✓")
			}
			t.AddRow(ui.Row{ui.Val(w.Name), ui.Addr(w.Address), ui.Meta(w.Type), def})
		}
		fmt.Fprintln(out, t.Render())
		fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d wallet(s) configured", len(wallets))))
		return nil
	},
}

var walletDefaultCmd = &cobra.Command{
	Use:   "default [name]",
	Short: "Set the default signing wallet",
	Long: `Set the wallet used when --wallet is not given. Without a name, pick
one interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newWalletManager()
		name := ""
		if len(args) == 1 {
			name = args[0]
		} else {
			picked, err := pickWallet(mgr)
			if err != nil {
				return err
			}
			if picked == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Meta("Cancelled."))
				return nil
			}
			name = picked
		}

		if err := mgr.SetDefault(name); err != nil {
			return err
		}
		cfg.DefaultWallet = name
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Default wallet set to %q.", name)))
		return nil
	},
}

var walletRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a wallet and its stored key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := newWalletManager().Remove(name); err != nil {
			return err
		}
		if cfg.DefaultWallet == name {
			cfg.DefaultWallet = ""
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Wallet %q removed.", name)))
		return nil
	},
}

func isDefaultWallet(w *wallet.Wallet) bool {
	if cfg.DefaultWallet != "" {
		return w.Name == cfg.DefaultWallet
	}
	return w.IsDefault
}

// pickWallet shows the interactive picker. It needs a terminal on stdin.
func pickWallet(mgr *wallet.Manager) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("wallet name required (no terminal to pick from)")
	}
	wallets, err := mgr.List()
	if err != nil {
		return "", err
	}
	items := make([]ui.PickerItem, 0, len(wallets))
	for _, w := range wallets {
		items = append(items, ui.PickerItem{
			Label:    w.Name,
			SubLabel: ui.TruncateAddr(w.Address) + "  " + w.Type,
			Value:    w.Name,
			Current:  isDefaultWallet(w),
		})
	}
	return ui.Pick("Select default wallet", items)
}

func init() {
	walletImportCmd.Flags().StringVar(&walletKeyFlag, "key", "", "hex private key (0x prefix optional)")

	walletCmd.AddCommand(
		walletImportCmd,
		walletAddCmd,
		walletGenerateCmd,
		walletListCmd,
		walletDefaultCmd,
		walletRemoveCmd,
	)
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Karotoka/ERC-7521/internal/chain"
	"github.com/Karotoka/ERC-7521/internal/config"
	"github.com/Karotoka/ERC-7521/internal/contract"
	"github.com/Karotoka/ERC-7521/internal/wallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Karotoka/ERC-7521/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir      string
	cfg         *config.Config
	verbose     bool
	rpcFlag     string
	networkFlag string
	walletFlag  string
)

// Test seams.
var (
	newKeystore = func(c *config.Config) wallet.KeystoreBackend {
		return wallet.DefaultKeystore(c.KeyringDir())
	}
	dialClient   = chain.Dial
	dialReadOnly = chain.DialReadOnly
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "wnt",
	Short: "Deploy and drive a wrapped native token",
	Long: `wnt deploys a wrapped native token contract and sends deposits,
transfers and withdrawals to it, waiting for each transaction to be mined.

Every write waits for the receipt and fails if the transaction reverted.
Run "wnt devnet" to try the whole flow on an in-process chain.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(verbose)
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default: $WNT_CONFIG_DIR or ~/.wnt)")
	rootCmd.PersistentFlags().StringVar(&rpcFlag, "rpc", "", "RPC endpoint, overrides config and $WNT_RPC_URL")
	rootCmd.PersistentFlags().StringVarP(&networkFlag, "network", "n", "", "network name used for RPC lookup and the deployment registry")
	rootCmd.PersistentFlags().StringVarP(&walletFlag, "wallet", "w", "", "wallet to sign with (default: configured default wallet)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		deployCmd,
		depositCmd,
		transferCmd,
		withdrawCmd,
		balanceCmd,
		listCmd,
		walletCmd,
		configCmd,
		devnetCmd,
		pingCmd,
	)
}

// setupLogging routes go-ethereum's logger to stderr. Library code logs at
// Debug, so only --verbose shows it.
func setupLogging(verbose bool) {
	level := log.LevelWarn
	if verbose {
		level = log.LevelDebug
	}
	useColor := isatty.IsTerminal(os.Stderr.Fd())
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, level, useColor)))
}

// network returns the network selected by --network or the config.
func network() string {
	if networkFlag != "" {
		return networkFlag
	}
	return cfg.DefaultNetwork
}

// rpcURL returns the endpoint for the selected network.
func rpcURL() string {
	if rpcFlag != "" {
		return rpcFlag
	}
	return cfg.ResolveRPC(network())
}

// newWalletManager creates a Manager backed by the config-dir JSON store.
func newWalletManager() *wallet.Manager {
	return wallet.NewManager(
		wallet.WithStore(wallet.NewJSONStore(cfg.WalletsPath())),
		wallet.WithKeystore(newKeystore(cfg)),
	)
}

// signingWalletName resolves --wallet, then the configured default.
func signingWalletName() string {
	if walletFlag != "" {
		return walletFlag
	}
	return cfg.DefaultWallet
}

// connect dials the selected RPC and returns a client signing with the
// selected wallet. The caller must Close it.
func connect(ctx context.Context) (*chain.Client, error) {
	signer, err := newWalletManager().Signer(signingWalletName())
	if err != nil {
		return nil, fmt.Errorf("%w (pick one with --wallet or `wnt wallet default`)", err)
	}
	key, err := signer.PrivateKey()
	if err != nil {
		return nil, err
	}
	url := rpcURL()
	log.Debug("Connecting", "rpc", url, "wallet", signer.Wallet().Name, "address", signer.Address())
	return dialClient(ctx, url, key, chain.WithWaitTimeout(cfg.WaitTimeout()))
}

// connectReadOnly dials the selected RPC for calls only. The caller must
// Close it.
func connectReadOnly(ctx context.Context) (*chain.Client, error) {
	url := rpcURL()
	log.Debug("Connecting read-only", "rpc", url)
	return dialReadOnly(ctx, url, common.Address{})
}

// openRegistry loads the deployment registry from the config dir.
func openRegistry() (*contract.Registry, error) {
	return contract.Open(cfg.ContractsPath())
}

package config

// Environment overrides.
const (
	EnvConfigDir = "WNT_CONFIG_DIR"
	EnvRPCURL    = "WNT_RPC_URL"
)

// Defaults.
const (
	DefaultRPCURL  = "http://127.0.0.1:8545"
	DefaultNetwork = "local"
	DefaultDirName = ".wnt"
)

const (
	configFile    = "config.json"
	walletsFile   = "wallets.json"
	contractsFile = "contracts.json"
	keyringDir    = "keyring"
)

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned by Set for keys that do not exist.
var ErrUnknownKey = errors.New("unknown config key")

// Keys lists the settable config keys in display order.
var Keys = []string{"rpc_url", "default_wallet", "default_network", "wait_timeout_seconds"}

// Load reads config from dir (or creates defaults). An empty dir falls back
// to $WNT_CONFIG_DIR, then ~/.wnt.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = os.Getenv(EnvConfigDir)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, DefaultDirName)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	if cfg.Networks == nil {
		cfg.Networks = make(map[string]string)
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Get returns the string form of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "rpc_url":
		return c.RPCURL, nil
	case "default_wallet":
		return c.DefaultWallet, nil
	case "default_network":
		return c.DefaultNetwork, nil
	case "wait_timeout_seconds":
		return strconv.Itoa(c.WaitTimeoutSeconds), nil
	}
	if name, ok := strings.CutPrefix(key, "networks."); ok {
		return c.Networks[name], nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Set assigns a config key from its string form. "networks.<name>" adds or
// replaces a named RPC endpoint; an empty value removes it.
func (c *Config) Set(key, value string) error {
	switch key {
	case "rpc_url":
		if err := validateURL(value); err != nil {
			return err
		}
		c.RPCURL = value
	case "default_wallet":
		c.DefaultWallet = value
	case "default_network":
		c.DefaultNetwork = value
	case "wait_timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("wait_timeout_seconds must be a non-negative integer, got %q", value)
		}
		c.WaitTimeoutSeconds = n
	default:
		name, ok := strings.CutPrefix(key, "networks.")
		if !ok || name == "" {
			return fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
		if value == "" {
			return c.RemoveNetwork(name)
		}
		return c.SetNetwork(name, value)
	}
	return nil
}

// SetNetwork adds or replaces the RPC URL of a named network.
func (c *Config) SetNetwork(name, rpcURL string) error {
	if err := validateURL(rpcURL); err != nil {
		return err
	}
	if c.Networks == nil {
		c.Networks = make(map[string]string)
	}
	c.Networks[name] = rpcURL
	return nil
}

// RemoveNetwork deletes a named network.
func (c *Config) RemoveNetwork(name string) error {
	if _, ok := c.Networks[name]; !ok {
		return fmt.Errorf("network %s not found", name)
	}
	delete(c.Networks, name)
	return nil
}

// NetworkNames returns the configured network names, sorted.
func (c *Config) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for n := range c.Networks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ResolveRPC picks the endpoint for network. Precedence: $WNT_RPC_URL, the
// named network, then rpc_url.
func (c *Config) ResolveRPC(network string) string {
	if env := os.Getenv(EnvRPCURL); env != "" {
		return env
	}
	if network == "" {
		network = c.DefaultNetwork
	}
	if u, ok := c.Networks[network]; ok && u != "" {
		return u
	}
	return c.RPCURL
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// WalletsPath is where wallet metadata is stored.
func (c *Config) WalletsPath() string { return filepath.Join(c.configDir, walletsFile) }

// ContractsPath is where the deployment registry is stored.
func (c *Config) ContractsPath() string { return filepath.Join(c.configDir, contractsFile) }

// KeyringDir is used by the encrypted file keyring backend.
func (c *Config) KeyringDir() string { return filepath.Join(c.configDir, keyringDir) }

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		RPCURL:         DefaultRPCURL,
		DefaultNetwork: DefaultNetwork,
		Networks:       make(map[string]string),
		configDir:      dir,
	}
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid RPC URL %q", raw)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
		return nil
	}
	return fmt.Errorf("invalid RPC URL %q: unsupported scheme %s", raw, u.Scheme)
}

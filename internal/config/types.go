package config

import "time"

// Config holds all wnt configuration.
type Config struct {
	RPCURL             string            `json:"rpc_url"`
	DefaultWallet      string            `json:"default_wallet"`
	DefaultNetwork     string            `json:"default_network"`
	WaitTimeoutSeconds int               `json:"wait_timeout_seconds"` // 0 = wait until the context ends
	Networks           map[string]string `json:"networks"`             // network name → RPC URL

	// internal: config dir path used for Save()
	configDir string
}

// WaitTimeout returns the receipt wait bound as a duration.
func (c *Config) WaitTimeout() time.Duration {
	if c.WaitTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.WaitTimeoutSeconds) * time.Second
}

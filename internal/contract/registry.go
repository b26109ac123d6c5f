// Package contract keeps a local record of token deployments so later
// commands can address them by name.
package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ErrContractNotFound is returned when a contract is not found.
var ErrContractNotFound = errors.New("contract not found")

// DefaultName is used when a deployment is recorded without a name.
const DefaultName = "wnt"

// Entry is a recorded deployment.
type Entry struct {
	Name       string `json:"name"`
	Network    string `json:"network"`
	ChainID    uint64 `json:"chain_id"`
	Address    string `json:"address"`
	Deployer   string `json:"deployer"`
	TxHash     string `json:"tx_hash"`
	DeployedAt string `json:"deployed_at"`
}

// CommonAddress returns Address parsed as an EVM address.
func (e *Entry) CommonAddress() common.Address {
	return common.HexToAddress(e.Address)
}

// Key is the registry key, "name@network".
func (e *Entry) Key() string { return key(e.Name, e.Network) }

// Registry stores and retrieves deployment entries.
type Registry struct {
	path      string
	contracts map[string]*Entry // key: "name@network"
}

// NewRegistry creates a Registry backed by a JSON file.
func NewRegistry(path string) *Registry {
	return &Registry{
		path:      path,
		contracts: make(map[string]*Entry),
	}
}

// Open creates a Registry and loads it from disk.
func Open(path string) (*Registry, error) {
	r := NewRegistry(path)
	if err := r.Load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Load reads stored contracts from disk.
func (r *Registry) Load() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parsing %s: %w", r.path, err)
	}

	for i := range entries {
		e := &entries[i]
		r.contracts[e.Key()] = e
	}
	return nil
}

// Save writes all contracts to disk.
func (r *Registry) Save() error {
	entries := make([]Entry, 0, len(r.contracts))
	for _, e := range r.All() {
		entries = append(entries, *e)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o600)
}

// Add adds or updates an entry. The address must be a valid hex address and
// is stored checksummed.
func (r *Registry) Add(e *Entry) error {
	if !common.IsHexAddress(e.Address) {
		return fmt.Errorf("invalid address %q for %s", e.Address, e.Key())
	}
	if e.Name == "" {
		e.Name = DefaultName
	}
	e.Address = common.HexToAddress(e.Address).Hex()
	r.contracts[e.Key()] = e
	return nil
}

// Record adds an entry for a deployment that just completed.
func (r *Registry) Record(name, network string, chainID uint64, address, deployer common.Address, txHash common.Hash) (*Entry, error) {
	e := &Entry{
		Name:       name,
		Network:    network,
		ChainID:    chainID,
		Address:    address.Hex(),
		Deployer:   deployer.Hex(),
		TxHash:     txHash.Hex(),
		DeployedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := r.Add(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Get returns a contract by name and network.
func (r *Registry) Get(name, network string) (*Entry, error) {
	e, ok := r.contracts[key(name, network)]
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrContractNotFound, name, network)
	}
	return e, nil
}

// Resolve accepts either a hex address or a registered name on network.
func (r *Registry) Resolve(nameOrAddr, network string) (common.Address, error) {
	if common.IsHexAddress(nameOrAddr) {
		return common.HexToAddress(nameOrAddr), nil
	}
	if nameOrAddr == "" {
		nameOrAddr = DefaultName
	}
	e, err := r.Get(nameOrAddr, network)
	if err != nil {
		return common.Address{}, err
	}
	return e.CommonAddress(), nil
}

// GetByName returns all entries for a name across networks, sorted by network.
func (r *Registry) GetByName(name string) []*Entry {
	var out []*Entry
	for _, e := range r.All() {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// All returns all entries sorted by key.
func (r *Registry) All() []*Entry {
	out := make([]*Entry, 0, len(r.contracts))
	for _, e := range r.contracts {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// Remove deletes an entry.
func (r *Registry) Remove(name, network string) error {
	k := key(name, network)
	if _, ok := r.contracts[k]; !ok {
		return fmt.Errorf("%w: %s on %s", ErrContractNotFound, name, network)
	}
	delete(r.contracts, k)
	return nil
}

func key(name, network string) string {
	return name + "@" + network
}

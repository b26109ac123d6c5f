package contract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Karotoka/ERC-7521/internal/contract"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	addrA = "0x00000000000000000000000000000000000000aa"
	addrB = "0x00000000000000000000000000000000000000bb"
)

func newReg(t *testing.T) *contract.Registry {
	t.Helper()
	return contract.NewRegistry(filepath.Join(t.TempDir(), "contracts.json"))
}

func TestNewRegistryEmpty(t *testing.T) {
	assert.Empty(t, newReg(t).All())
}

func TestRegistryAddAndGet(t *testing.T) {
	reg := newReg(t)

	require.NoError(t, reg.Add(&contract.Entry{Name: "weth", Network: "local", Address: addrA}))

	got, err := reg.Get("weth", "local")
	require.NoError(t, err)
	assert.Equal(t, "weth", got.Name)
	assert.Equal(t, common.HexToAddress(addrA).Hex(), got.Address, "address is stored checksummed")
	assert.Equal(t, "weth@local", got.Key())
}

func TestRegistryAddDefaultsName(t *testing.T) {
	reg := newReg(t)
	require.NoError(t, reg.Add(&contract.Entry{Network: "local", Address: addrA}))

	_, err := reg.Get(contract.DefaultName, "local")
	assert.NoError(t, err)
}

func TestRegistryAddRejectsBadAddress(t *testing.T) {
	reg := newReg(t)
	assert.Error(t, reg.Add(&contract.Entry{Name: "x", Network: "local", Address: "0x123"}))
	assert.Empty(t, reg.All())
}

func TestRegistryGetNotFound(t *testing.T) {
	_, err := newReg(t).Get("nonexistent", "local")
	assert.ErrorIs(t, err, contract.ErrContractNotFound)
}

func TestRegistryGetDifferentNetwork(t *testing.T) {
	reg := newReg(t)
	require.NoError(t, reg.Add(&contract.Entry{Name: "weth", Network: "local", Address: addrA}))

	_, err := reg.Get("weth", "sepolia")
	assert.ErrorIs(t, err, contract.ErrContractNotFound)
}

func TestRegistryAddOverwritesExisting(t *testing.T) {
	reg := newReg(t)
	require.NoError(t, reg.Add(&contract.Entry{Name: "weth", Network: "local", Address: addrA}))
	require.NoError(t, reg.Add(&contract.Entry{Name: "weth", Network: "local", Address: addrB}))

	got, err := reg.Get("weth", "local")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(addrB).Hex(), got.Address)
	assert.Len(t, reg.All(), 1)
}

func TestRegistryGetByNameSorted(t *testing.T) {
	reg := newReg(t)
	require.NoError(t, reg.Add(&contract.Entry{Name: "weth", Network: "sepolia", Address: addrA}))
	require.NoError(t, reg.Add(&contract.Entry{Name: "weth", Network: "local", Address: addrB}))
	require.NoError(t, reg.Add(&contract.Entry{Name: "other", Network: "local", Address: addrB}))

	entries := reg.GetByName("weth")
	require.Len(t, entries, 2)
	assert.Equal(t, "local", entries[0].Network)
	assert.Equal(t, "sepolia", entries[1].Network)
}

func TestRegistryRemove(t *testing.T) {
	reg := newReg(t)
	require.NoError(t, reg.Add(&contract.Entry{Name: "weth", Network: "local", Address: addrA}))

	require.NoError(t, reg.Remove("weth", "local"))
	assert.ErrorIs(t, reg.Remove("weth", "local"), contract.ErrContractNotFound)
}

// ---------------------------------------------------------------------------
// Record / Resolve
// ---------------------------------------------------------------------------

func TestRegistryRecord(t *testing.T) {
	reg := newReg(t)
	hash := common.HexToHash("0x01")

	e, err := reg.Record("weth", "local", 1337, common.HexToAddress(addrA), common.HexToAddress(addrB), hash)
	require.NoError(t, err)
	assert.Equal(t, uint64(1337), e.ChainID)
	assert.Equal(t, common.HexToAddress(addrB).Hex(), e.Deployer)
	assert.Equal(t, hash.Hex(), e.TxHash)
	assert.NotEmpty(t, e.DeployedAt)
}

func TestRegistryResolve(t *testing.T) {
	reg := newReg(t)
	require.NoError(t, reg.Add(&contract.Entry{Name: "weth", Network: "local", Address: addrA}))
	require.NoError(t, reg.Add(&contract.Entry{Name: contract.DefaultName, Network: "local", Address: addrB}))

	got, err := reg.Resolve("weth", "local")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(addrA), got)

	got, err = reg.Resolve("", "local")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(addrB), got)

	got, err = reg.Resolve(addrB, "anywhere")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(addrB), got)

	_, err = reg.Resolve("weth", "sepolia")
	assert.ErrorIs(t, err, contract.ErrContractNotFound)
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

func TestRegistrySaveAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "contracts.json")
	reg := contract.NewRegistry(path)
	_, err := reg.Record("weth", "local", 1337, common.HexToAddress(addrA), common.HexToAddress(addrB), common.Hash{})
	require.NoError(t, err)
	require.NoError(t, reg.Save())

	reopened, err := contract.Open(path)
	require.NoError(t, err)
	got, err := reopened.Get("weth", "local")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(addrA).Hex(), got.Address)
	assert.Equal(t, uint64(1337), got.ChainID)
}

func TestRegistryOpenMissingFile(t *testing.T) {
	reg, err := contract.Open(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Empty(t, reg.All())
}

func TestRegistryOpenCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contracts.json")
	require.NoError(t, os.WriteFile(path, []byte("[{"), 0o600))

	_, err := contract.Open(path)
	assert.Error(t, err)
}

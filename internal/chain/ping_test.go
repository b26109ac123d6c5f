package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpcServer answers JSON-RPC methods from results and 404s anything else.
func rpcServer(t *testing.T, results map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string          `json:"method"`
			ID     json.RawMessage `json:"id"`
		}
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
		res, ok := results[req.Method]
		if !ok {
			http.Error(w, "method not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  res,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ---------------------------------------------------------------------------
// Ping
// ---------------------------------------------------------------------------

func TestPingSuccess(t *testing.T) {
	srv := rpcServer(t, map[string]string{
		"eth_blockNumber": "0x1388", // 5000
		"eth_chainId":     "0x2105", // 8453
	})

	latency, chainID, block, err := Ping(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, uint64(5000), block)
	assert.Equal(t, int64(8453), chainID.Int64())
	assert.Greater(t, latency, time.Duration(0))
}

func TestPingBlockNumberFails(t *testing.T) {
	srv := rpcServer(t, map[string]string{"eth_chainId": "0x1"})

	_, _, _, err := Ping(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block number")
}

func TestPingChainIDFails(t *testing.T) {
	srv := rpcServer(t, map[string]string{"eth_blockNumber": "0x10"})

	_, _, block, err := Ping(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain id")
	assert.Equal(t, uint64(16), block)
}

func TestPingBadURL(t *testing.T) {
	_, _, _, err := Ping(context.Background(), "ftp://nowhere")
	assert.Error(t, err)
}

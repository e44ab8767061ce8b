package blockchain

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/chainconf/internal/config"
	domain "github.com/trebuchet-org/chainconf/internal/domain/config"
)

func newTestProber() *Prober {
	return NewProber(&domain.RuntimeConfig{Timeout: 5 * time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newRPCServer answers eth_chainId and eth_blockNumber.
func newRPCServer(t *testing.T, chainID, head string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		switch req.Method {
		case "eth_chainId":
			resp["result"] = chainID
		case "eth_blockNumber":
			resp["result"] = head
		default:
			resp["error"] = map[string]any{"code": -32601, "message": "method not found"}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProbe(t *testing.T) {
	srv := newRPCServer(t, "0x5", "0x10")
	cfg := config.Load(config.MapLookup(map[string]string{domain.EnvGoerliInfuraURL: srv.URL}))
	goerli, _ := cfg.Network(domain.NetworkGoerli)

	result, err := newTestProber().Probe(context.Background(), goerli)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), result.ChainID)
	assert.Equal(t, uint64(16), result.BlockNumber)
}

func TestProbe_EmptyURLFailsAtUse(t *testing.T) {
	cfg := config.Load(config.MapLookup(nil))
	kovan, _ := cfg.Network(domain.NetworkKovan)

	_, err := newTestProber().Probe(context.Background(), kovan)
	assert.ErrorIs(t, err, config.ErrEmptyRPCURL)
}

func TestProbe_InvalidURL(t *testing.T) {
	cfg := config.Load(config.MapLookup(map[string]string{domain.EnvRinkebyInfuraURL: "rinkeby"}))
	rinkeby, _ := cfg.Network(domain.NetworkRinkeby)

	_, err := newTestProber().Probe(context.Background(), rinkeby)
	assert.ErrorIs(t, err, config.ErrInvalidRPCURL)
}

func TestProbe_RPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg := config.Load(config.MapLookup(map[string]string{domain.EnvArbitrumAlchemyURL: srv.URL}))
	arb, _ := cfg.Network(domain.NetworkArbitrum)

	_, err := newTestProber().Probe(context.Background(), arb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arbitrum")
}

package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/chainconf/internal/config"
	domain "github.com/trebuchet-org/chainconf/internal/domain/config"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

const defaultProbeTimeout = 10 * time.Second

// Prober implements usecase.NetworkProber using ethclient
type Prober struct {
	timeout time.Duration
	log     *slog.Logger
}

// NewProber creates a prober bounded by the runtime timeout
func NewProber(cfg *domain.RuntimeConfig, log *slog.Logger) *Prober {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Prober{timeout: timeout, log: log}
}

// Probe connects to the profile's RPC URL and reads the chain ID and head block.
// This is where an unset or malformed URL finally becomes an error.
func (p *Prober) Probe(ctx context.Context, profile domain.NetworkProfile) (*usecase.ProbeResult, error) {
	if err := config.RequireRPC(profile); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	client, err := ethclient.DialContext(ctx, profile.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", profile.Name, err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID for %s: %w", profile.Name, err)
	}

	head, err := client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block number for %s: %w", profile.Name, err)
	}

	latency := time.Since(start)
	p.log.Debug("probed network", "network", profile.Name, "chainId", chainID, "head", head, "latency", latency)

	return &usecase.ProbeResult{
		ChainID:     chainID.Uint64(),
		BlockNumber: head,
		Latency:     latency,
	}, nil
}

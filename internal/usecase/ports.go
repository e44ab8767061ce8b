package usecase

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/chainconf/internal/domain"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

// ProbeResult is what a live network reports back
type ProbeResult struct {
	ChainID     uint64
	BlockNumber uint64
	Latency     time.Duration
}

// NetworkProber talks to a network's RPC endpoint
type NetworkProber interface {
	Probe(ctx context.Context, profile config.NetworkProfile) (*ProbeResult, error)
}

// AddressDeriver turns a credential into the address it controls
type AddressDeriver interface {
	DeriveAddress(account string) (common.Address, error)
}

// NodeRunner runs a local node for the simulation profile
type NodeRunner interface {
	Command(instance *domain.AnvilInstance) []string
	Run(ctx context.Context, instance *domain.AnvilInstance) error
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

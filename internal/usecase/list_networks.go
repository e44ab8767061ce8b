package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Probe contacts each remote network's RPC endpoint
	Probe bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name       string
	RPCURL     string
	Accounts   int
	Local      bool
	ForkURL    string
	ForkBlock  uint64
	Configured bool
	Probe      *ProbeResult
	Error      error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	cfg    *config.Config
	prober NetworkProber
	sink   ProgressSink
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.Config, prober NetworkProber, sink ProgressSink) *ListNetworks {
	return &ListNetworks{
		cfg:    cfg,
		prober: prober,
		sink:   sink,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	names := uc.cfg.NetworkNames()
	networks := make([]NetworkStatus, 0, len(names))

	for i, name := range names {
		profile := uc.cfg.Networks[name]
		status := NetworkStatus{
			Name:       name,
			RPCURL:     profile.RPCURL,
			Accounts:   len(profile.Accounts),
			Local:      profile.IsLocalSimulation(),
			Configured: profile.RPCURL != "" || profile.IsLocalSimulation(),
		}
		if profile.Forking != nil {
			status.ForkURL = profile.Forking.URL
			status.ForkBlock = profile.Forking.BlockNumber
		}

		if params.Probe && !status.Local {
			uc.sink.OnProgress(ctx, ProgressEvent{
				Stage:   "probe",
				Current: i + 1,
				Total:   len(names),
				Message: fmt.Sprintf("Probing %s", name),
				Spinner: true,
			})
			status.Probe, status.Error = uc.prober.Probe(ctx, profile)
		}

		networks = append(networks, status)
	}

	if params.Probe {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "probe", Current: len(names), Total: len(names)})
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}

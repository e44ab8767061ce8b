package usecase

import (
	"context"

	loader "github.com/trebuchet-org/chainconf/internal/config"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

// ShowConfigParams selects what to show
type ShowConfigParams struct {
	Network string // empty shows everything
}

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config  config.Config
	Network *config.NetworkProfile
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	cfg *config.Config
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.Config) *ShowConfig {
	return &ShowConfig{
		cfg: cfg,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context, params ShowConfigParams) (*ShowConfigResult, error) {
	result := &ShowConfigResult{Config: *uc.cfg}
	if params.Network == "" {
		return result, nil
	}

	profile, err := loader.ResolveNetwork(*uc.cfg, params.Network)
	if err != nil {
		return nil, err
	}
	result.Network = &profile
	return result, nil
}

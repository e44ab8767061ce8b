package usecase

import (
	"context"

	"github.com/trebuchet-org/chainconf/internal/domain"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

// StartNodeParams configures the local node
type StartNodeParams struct {
	Host   string
	Port   string
	DryRun bool
}

// StartNodeResult describes the node that was (or would be) started
type StartNodeResult struct {
	Instance *domain.AnvilInstance
	Command  []string
	Started  bool
}

// StartNode runs a local node for the simulation profile
type StartNode struct {
	cfg    *config.Config
	runner NodeRunner
}

// NewStartNode creates a new StartNode use case
func NewStartNode(cfg *config.Config, runner NodeRunner) *StartNode {
	return &StartNode{cfg: cfg, runner: runner}
}

// Run builds the node command and, unless DryRun is set, blocks running it.
func (uc *StartNode) Run(ctx context.Context, params StartNodeParams) (*StartNodeResult, error) {
	profile, _ := uc.cfg.Network(config.NetworkHardhat)
	instance := &domain.AnvilInstance{
		Host:    params.Host,
		Port:    params.Port,
		Profile: profile,
	}

	result := &StartNodeResult{
		Instance: instance,
		Command:  uc.runner.Command(instance),
	}
	if params.DryRun {
		return result, nil
	}

	if err := uc.runner.Run(ctx, instance); err != nil {
		return nil, err
	}
	result.Started = true
	return result, nil
}

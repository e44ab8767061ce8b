package usecase

import (
	"context"
	"errors"

	loader "github.com/trebuchet-org/chainconf/internal/config"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

// UnsetVariable is an optional variable that was not provided
type UnsetVariable struct {
	Network  string
	Variable string
}

// ValidateConfigResult contains the findings of a validation run
type ValidateConfigResult struct {
	Issues []loader.Issue
	Unset  []UnsetVariable
}

// Valid reports whether no issues were found. Unset variables do not count.
func (r *ValidateConfigResult) Valid() bool {
	return len(r.Issues) == 0
}

// ValidateConfig checks the loaded configuration for malformed values
type ValidateConfig struct {
	cfg    *config.Config
	lookup loader.LookupFunc
}

// NewValidateConfig creates a new ValidateConfig use case
func NewValidateConfig(cfg *config.Config, lookup loader.LookupFunc) *ValidateConfig {
	return &ValidateConfig{
		cfg:    cfg,
		lookup: lookup,
	}
}

// Run executes the use case
func (uc *ValidateConfig) Run(ctx context.Context) (*ValidateConfigResult, error) {
	result := &ValidateConfigResult{}

	if err := loader.Validate(*uc.cfg); err != nil {
		var verr *loader.ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}
		result.Issues = verr.Issues
	}

	check := func(network, variable string) {
		if loader.GetEnvOr(uc.lookup, variable, "") == "" {
			result.Unset = append(result.Unset, UnsetVariable{Network: network, Variable: variable})
		}
	}
	check(config.NetworkHardhat, config.EnvMainnetAlchemyURL)
	for _, remote := range config.RemoteNetworks {
		check(remote.Name, remote.URLEnv)
		check(remote.Name, remote.KeyEnv)
	}

	return result, nil
}

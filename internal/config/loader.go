package config

import (
	"slices"

	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

const accountPrefix = config.AccountPrefix

// Load assembles the toolchain configuration from the given environment.
// It never fails: unset variables become empty URLs and empty account lists,
// and problems with their values only surface when a network is used.
func Load(lookup LookupFunc) config.Config {
	networks := make(map[string]config.NetworkProfile, len(config.RemoteNetworks)+2)

	networks[config.NetworkHardhat] = hardhatProfile(lookup)
	networks[config.NetworkLocalhost] = config.NetworkProfile{
		Name:     config.NetworkLocalhost,
		RPCURL:   config.LocalhostRPCURL,
		Accounts: []string{},
	}

	for _, remote := range config.RemoteNetworks {
		networks[remote.Name] = config.NetworkProfile{
			Name:     remote.Name,
			RPCURL:   GetEnvOr(lookup, remote.URLEnv, ""),
			Accounts: accountsFromEnv(lookup, remote.KeyEnv),
		}
	}

	return config.Config{
		Compiler: config.CompilerSettings{
			Version: config.SolidityVersion,
			Optimizer: config.OptimizerSettings{
				Enabled: true,
				Runs:    config.OptimizerRuns,
			},
		},
		Networks: networks,
		Plugins:  slices.Clone(config.Plugins),
	}
}

// LoadFromOS is Load against the process environment.
func LoadFromOS() config.Config {
	return Load(OSLookup)
}

// hardhatProfile builds the local simulation network. Everything except the
// fork source URL is fixed.
func hardhatProfile(lookup LookupFunc) config.NetworkProfile {
	baseFee := uint64(0)
	gasLimit := config.MaxBlockGasLimit
	return config.NetworkProfile{
		Name:     config.NetworkHardhat,
		Accounts: []string{},
		Forking: &config.ForkConfig{
			URL:         GetEnvOr(lookup, config.EnvMainnetAlchemyURL, ""),
			BlockNumber: config.ForkBlockNumber,
		},
		AllowUnlimitedContractSize: true,
		LoggingEnabled:             true,
		InitialBaseFeePerGas:       &baseFee,
		BlockGasLimit:              &gasLimit,
	}
}

package config

import (
	"slices"
	"sort"
)

// Network names known to the toolchain.
const (
	NetworkHardhat   = "hardhat"
	NetworkLocalhost = "localhost"
	NetworkKovan     = "kovan"
	NetworkGoerli    = "goerli"
	NetworkRinkeby   = "rinkeby"
	NetworkArbitrum  = "arbitrum"
)

// Environment variables read by the loader. All of them are optional.
const (
	EnvMainnetAlchemyURL     = "MAINNET_ALCHEMY_URL"
	EnvKovanInfuraURL        = "KOVAN_INFURA_URL"
	EnvKovanDevPrivateKey    = "KOVAN_DEV_PRIVATE_KEY"
	EnvGoerliInfuraURL       = "GOERLI_INFURA_URL"
	EnvGoerliDevPrivateKey   = "GOERLI_DEV_PRIVATE_KEY"
	EnvRinkebyInfuraURL      = "RINKEBY_INFURA_URL"
	EnvRinkebyDevPrivateKey  = "RINKEBY_DEV_PRIVATE_KEY"
	EnvArbitrumAlchemyURL    = "ARBITRUM_ALCHEMY_URL"
	EnvArbitrumDevPrivateKey = "ARBITRUM_DEV_PRIVATE_KEY"
)

// Fixed toolchain settings. None of these are read from the environment.
const (
	SolidityVersion  = "0.8.11"
	OptimizerRuns    = 200
	ForkBlockNumber  = uint64(14032174)
	MaxBlockGasLimit = uint64(0x1fffffffffffff)
	LocalhostRPCURL  = "http://127.0.0.1:8545"

	// AccountPrefix is prepended to every private key read from the environment.
	AccountPrefix = "0x"
)

// Plugins registered with the external build framework, in load order.
var Plugins = []string{
	"@nomiclabs/hardhat-waffle",
	"@openzeppelin/hardhat-upgrades",
	"hardhat-gas-reporter",
	"hardhat-contract-sizer",
	"hardhat-abi-exporter",
}

// RemoteNetwork describes where a remote profile reads its settings from.
type RemoteNetwork struct {
	Name   string
	URLEnv string
	KeyEnv string
}

// RemoteNetworks lists the env-driven deployment targets in declaration order.
var RemoteNetworks = []RemoteNetwork{
	{Name: NetworkKovan, URLEnv: EnvKovanInfuraURL, KeyEnv: EnvKovanDevPrivateKey},
	{Name: NetworkGoerli, URLEnv: EnvGoerliInfuraURL, KeyEnv: EnvGoerliDevPrivateKey},
	{Name: NetworkRinkeby, URLEnv: EnvRinkebyInfuraURL, KeyEnv: EnvRinkebyDevPrivateKey},
	{Name: NetworkArbitrum, URLEnv: EnvArbitrumAlchemyURL, KeyEnv: EnvArbitrumDevPrivateKey},
}

// ForkConfig seeds the local simulation from a remote chain.
type ForkConfig struct {
	URL         string `json:"url"`
	BlockNumber uint64 `json:"blockNumber"`
}

// NetworkProfile is a single deployment target.
type NetworkProfile struct {
	Name     string   `json:"-"`
	RPCURL   string   `json:"url"`
	Accounts []string `json:"accounts"`

	// Local simulation only
	Forking                    *ForkConfig `json:"forking,omitempty"`
	AllowUnlimitedContractSize bool        `json:"allowUnlimitedContractSize,omitempty"`
	LoggingEnabled             bool        `json:"loggingEnabled,omitempty"`
	InitialBaseFeePerGas       *uint64     `json:"initialBaseFeePerGas,omitempty"`
	BlockGasLimit              *uint64     `json:"blockGasLimit,omitempty"`
}

// IsLocalSimulation reports whether the profile is the in-process simulation network.
func (p NetworkProfile) IsLocalSimulation() bool {
	return p.Name == NetworkHardhat
}

// CanSign reports whether the profile carries at least one credential.
func (p NetworkProfile) CanSign() bool {
	return len(p.Accounts) > 0
}

// Clone returns a deep copy of the profile.
func (p NetworkProfile) Clone() NetworkProfile {
	out := p
	out.Accounts = slices.Clone(p.Accounts)
	if out.Accounts == nil {
		out.Accounts = []string{}
	}
	if p.Forking != nil {
		f := *p.Forking
		out.Forking = &f
	}
	if p.InitialBaseFeePerGas != nil {
		v := *p.InitialBaseFeePerGas
		out.InitialBaseFeePerGas = &v
	}
	if p.BlockGasLimit != nil {
		v := *p.BlockGasLimit
		out.BlockGasLimit = &v
	}
	return out
}

// OptimizerSettings tunes bytecode optimization.
type OptimizerSettings struct {
	Enabled bool `json:"enabled"`
	Runs    int  `json:"runs"`
}

// CompilerSettings pins the compiler.
type CompilerSettings struct {
	Version   string            `json:"version"`
	Optimizer OptimizerSettings `json:"optimizer"`
}

// Config is the toolchain configuration assembled at startup.
// It is built once and must not be mutated afterwards; use Network to get copies.
type Config struct {
	Compiler CompilerSettings          `json:"compiler"`
	Networks map[string]NetworkProfile `json:"networks"`
	Plugins  []string                  `json:"plugins"`
}

// Network returns a copy of the named profile.
func (c Config) Network(name string) (NetworkProfile, bool) {
	p, ok := c.Networks[name]
	if !ok {
		return NetworkProfile{}, false
	}
	return p.Clone(), true
}

// NetworkNames returns the configured network names, local profiles first,
// then the rest alphabetically.
func (c Config) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	rank := func(name string) int {
		switch name {
		case NetworkHardhat:
			return 0
		case NetworkLocalhost:
			return 1
		default:
			return 2
		}
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
	return names
}

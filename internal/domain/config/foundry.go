package config

// FoundryConfig is the subset of foundry.toml that chainconf can emit.
type FoundryConfig struct {
	Profile      map[string]ProfileConfig `toml:"profile"`
	RpcEndpoints map[string]string        `toml:"rpc_endpoints"`
}

// ProfileConfig represents a [profile.<name>] section of foundry.toml.
type ProfileConfig struct {
	SolcVersion   string `toml:"solc_version,omitempty"`
	Optimizer     bool   `toml:"optimizer"`
	OptimizerRuns int    `toml:"optimizer_runs"`
}

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatFoundry Format = "foundry"
)

// Formats lists the supported export formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML, FormatFoundry}
}

// ParseFormat normalizes a user supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}
	if !slices.Contains(Formats(), f) {
		return "", fmt.Errorf("unsupported format %q (expected one of json, yaml, toml, foundry)", s)
	}
	return f, nil
}

// Document renders cfg in the shape the build framework consumes:
// solidity, optimizer and networks.<name> with url and accounts.
func Document(cfg config.Config) map[string]any {
	networks := make(map[string]any, len(cfg.Networks))
	for name, p := range cfg.Networks {
		networks[name] = networkDocument(p)
	}
	return map[string]any{
		"solidity": cfg.Compiler.Version,
		"optimizer": map[string]any{
			"enabled": cfg.Compiler.Optimizer.Enabled,
			"runs":    cfg.Compiler.Optimizer.Runs,
		},
		"networks": networks,
	}
}

func networkDocument(p config.NetworkProfile) map[string]any {
	if p.IsLocalSimulation() {
		doc := map[string]any{
			"allowUnlimitedContractSize": p.AllowUnlimitedContractSize,
			"loggingEnabled":             p.LoggingEnabled,
		}
		if p.Forking != nil {
			doc["forking"] = map[string]any{
				"url":         p.Forking.URL,
				"blockNumber": p.Forking.BlockNumber,
			}
		}
		if p.InitialBaseFeePerGas != nil {
			doc["initialBaseFeePerGas"] = *p.InitialBaseFeePerGas
		}
		if p.BlockGasLimit != nil {
			doc["blockGasLimit"] = *p.BlockGasLimit
		}
		return doc
	}

	accounts := slices.Clone(p.Accounts)
	if accounts == nil {
		accounts = []string{}
	}
	return map[string]any{
		"url":      p.RPCURL,
		"accounts": accounts,
	}
}

// Export encodes cfg in the requested format.
func Export(cfg config.Config, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(Document(cfg), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(Document(cfg)); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(Document(cfg)); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatFoundry:
		return ExportFoundry(cfg)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// FoundryConfig maps cfg onto foundry.toml. RPC endpoints reference their
// environment variables instead of embedding values; credentials are omitted.
func FoundryConfig(cfg config.Config) config.FoundryConfig {
	endpoints := map[string]string{
		config.NetworkLocalhost: config.LocalhostRPCURL,
		"mainnet":               envReference(config.EnvMainnetAlchemyURL),
	}
	for _, remote := range config.RemoteNetworks {
		if _, ok := cfg.Networks[remote.Name]; ok {
			endpoints[remote.Name] = envReference(remote.URLEnv)
		}
	}
	return config.FoundryConfig{
		Profile: map[string]config.ProfileConfig{
			"default": {
				SolcVersion:   cfg.Compiler.Version,
				Optimizer:     cfg.Compiler.Optimizer.Enabled,
				OptimizerRuns: cfg.Compiler.Optimizer.Runs,
			},
		},
		RpcEndpoints: endpoints,
	}
}

// ExportFoundry encodes FoundryConfig(cfg) as TOML.
func ExportFoundry(cfg config.Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(FoundryConfig(cfg)); err != nil {
		return nil, fmt.Errorf("failed to encode foundry.toml: %w", err)
	}
	return buf.Bytes(), nil
}

func envReference(name string) string {
	return "${" + name + "}"
}

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

// Validate checks the values that are present in cfg. Unset URLs and empty
// account lists are not issues: such profiles are inert until used.
// It returns a *ValidationError listing every problem, or nil.
func Validate(cfg config.Config) error {
	var issues []Issue
	for _, name := range cfg.NetworkNames() {
		issues = append(issues, ValidateNetwork(cfg.Networks[name])...)
	}
	if cfg.Compiler.Optimizer.Runs < 0 {
		issues = append(issues, Issue{
			Network: "compiler",
			Field:   "optimizer.runs",
			Err:     fmt.Errorf("must be non-negative, got %d", cfg.Compiler.Optimizer.Runs),
		})
	}
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

// ValidateNetwork returns the issues of a single profile.
func ValidateNetwork(p config.NetworkProfile) []Issue {
	var issues []Issue
	if p.RPCURL != "" {
		if err := CheckRPCURL(p.RPCURL); err != nil {
			issues = append(issues, Issue{Network: p.Name, Field: "url", Err: err})
		}
	}
	if p.Forking != nil && p.Forking.URL != "" {
		if err := CheckRPCURL(p.Forking.URL); err != nil {
			issues = append(issues, Issue{Network: p.Name, Field: "forking.url", Err: err})
		}
	}
	for i, account := range p.Accounts {
		if err := CheckPrivateKey(account); err != nil {
			issues = append(issues, Issue{Network: p.Name, Field: fmt.Sprintf("accounts[%d]", i), Err: err})
		}
	}
	return issues
}

// RequireRPC is called before a network is actually used. Unlike Validate it
// treats an empty URL as an error.
func RequireRPC(p config.NetworkProfile) error {
	if p.RPCURL == "" {
		return fmt.Errorf("network %s: %w", p.Name, ErrEmptyRPCURL)
	}
	if err := CheckRPCURL(p.RPCURL); err != nil {
		return fmt.Errorf("network %s: %w", p.Name, err)
	}
	return nil
}

// CheckRPCURL accepts absolute http(s) and ws(s) URLs with a host.
func CheckRPCURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRPCURL, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidRPCURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidRPCURL)
	}
	return nil
}

// CheckPrivateKey accepts a 0x-prefixed secp256k1 private key.
func CheckPrivateKey(account string) error {
	hexKey, ok := strings.CutPrefix(account, accountPrefix)
	if !ok {
		return fmt.Errorf("%w: missing %s prefix", ErrInvalidCredential, accountPrefix)
	}
	if len(hexKey) != 64 {
		return fmt.Errorf("%w: expected 64 hex characters, got %d", ErrInvalidCredential, len(hexKey))
	}
	if _, err := crypto.HexToECDSA(hexKey); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	return nil
}

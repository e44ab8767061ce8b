package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

// AccountInfo describes one configured signer. The key itself is never returned.
type AccountInfo struct {
	Network string
	Index   int
	Address common.Address
	Error   error
}

// ListAccountsResult contains the signers of every network
type ListAccountsResult struct {
	Accounts []AccountInfo
	// Unsigned lists networks without credentials
	Unsigned []string
}

// ListAccounts derives signer addresses from the configured credentials
type ListAccounts struct {
	cfg     *config.Config
	deriver AddressDeriver
}

// NewListAccounts creates a new ListAccounts use case
func NewListAccounts(cfg *config.Config, deriver AddressDeriver) *ListAccounts {
	return &ListAccounts{cfg: cfg, deriver: deriver}
}

// Run executes the use case
func (uc *ListAccounts) Run(ctx context.Context) (*ListAccountsResult, error) {
	result := &ListAccountsResult{}
	remote := lo.Filter(uc.cfg.NetworkNames(), func(name string, _ int) bool {
		return !uc.cfg.Networks[name].IsLocalSimulation()
	})
	for _, name := range remote {
		profile := uc.cfg.Networks[name]
		if !profile.CanSign() {
			result.Unsigned = append(result.Unsigned, name)
			continue
		}
		for i, account := range profile.Accounts {
			addr, err := uc.deriver.DeriveAddress(account)
			result.Accounts = append(result.Accounts, AccountInfo{
				Network: name,
				Index:   i,
				Address: addr,
				Error:   err,
			})
		}
	}
	return result, nil
}

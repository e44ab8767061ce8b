package signer

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/chainconf/internal/config"
	domain "github.com/trebuchet-org/chainconf/internal/domain/config"
)

// Deriver implements usecase.AddressDeriver
type Deriver struct{}

// NewDeriver creates a new address deriver
func NewDeriver() *Deriver {
	return &Deriver{}
}

// DeriveAddress returns the address controlled by a 0x-prefixed private key.
func (d *Deriver) DeriveAddress(account string) (common.Address, error) {
	return DeriveAddress(account)
}

// DeriveAddress returns the address controlled by a 0x-prefixed private key.
func DeriveAddress(account string) (common.Address, error) {
	if err := config.CheckPrivateKey(account); err != nil {
		return common.Address{}, err
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(account, domain.AccountPrefix))
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", config.ErrInvalidCredential, err)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

package domain

import "github.com/trebuchet-org/chainconf/internal/domain/config"

// AnvilInstance represents a local anvil node serving a simulation profile
type AnvilInstance struct {
	Host    string                `json:"host"`
	Port    string                `json:"port"`
	Profile config.NetworkProfile `json:"-"`
}

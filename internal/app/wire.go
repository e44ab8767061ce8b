//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/chainconf/internal/adapters"
	loader "github.com/trebuchet-org/chainconf/internal/config"
	"github.com/trebuchet-org/chainconf/internal/logging"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		loader.Provider,
		loader.ProvideLookup,
		loader.ProvideToolchainConfig,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewShowConfig,
		usecase.NewListNetworks,
		usecase.NewValidateConfig,
		usecase.NewExportConfig,
		usecase.NewListAccounts,
		usecase.NewStartNode,

		// App
		NewApp,
	)
	return nil, nil
}

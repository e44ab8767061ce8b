package app

import (
	"log/slog"

	loader "github.com/trebuchet-org/chainconf/internal/config"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config    *config.RuntimeConfig
	Toolchain *config.Config
	Lookup    loader.LookupFunc
	Logger    *slog.Logger

	// Use cases
	ShowConfig     *usecase.ShowConfig
	ListNetworks   *usecase.ListNetworks
	ValidateConfig *usecase.ValidateConfig
	ExportConfig   *usecase.ExportConfig
	ListAccounts   *usecase.ListAccounts
	StartNode      *usecase.StartNode
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	toolchain *config.Config,
	lookup loader.LookupFunc,
	logger *slog.Logger,
	showConfig *usecase.ShowConfig,
	listNetworks *usecase.ListNetworks,
	validateConfig *usecase.ValidateConfig,
	exportConfig *usecase.ExportConfig,
	listAccounts *usecase.ListAccounts,
	startNode *usecase.StartNode,
) (*App, error) {
	return &App{
		Config:         cfg,
		Toolchain:      toolchain,
		Lookup:         lookup,
		Logger:         logger,
		ShowConfig:     showConfig,
		ListNetworks:   listNetworks,
		ValidateConfig: validateConfig,
		ExportConfig:   exportConfig,
		ListAccounts:   listAccounts,
		StartNode:      startNode,
	}, nil
}

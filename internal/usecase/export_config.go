package usecase

import (
	"context"

	loader "github.com/trebuchet-org/chainconf/internal/config"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

// ExportConfigParams selects the output encoding
type ExportConfigParams struct {
	Format string
}

// ExportConfigResult holds the encoded document
type ExportConfigResult struct {
	Format loader.Format
	Data   []byte
}

// ExportConfig encodes the configuration for other tools
type ExportConfig struct {
	cfg *config.Config
}

// NewExportConfig creates a new ExportConfig use case
func NewExportConfig(cfg *config.Config) *ExportConfig {
	return &ExportConfig{cfg: cfg}
}

// Run executes the use case
func (uc *ExportConfig) Run(ctx context.Context, params ExportConfigParams) (*ExportConfigResult, error) {
	format := loader.FormatJSON
	if params.Format != "" {
		var err error
		if format, err = loader.ParseFormat(params.Format); err != nil {
			return nil, err
		}
	}

	data, err := loader.Export(*uc.cfg, format)
	if err != nil {
		return nil, err
	}
	return &ExportConfigResult{Format: format, Data: data}, nil
}

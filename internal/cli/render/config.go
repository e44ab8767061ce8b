package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// ConfigRenderer renders the loaded configuration
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// Render renders the configuration display
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	if result.Network != nil {
		r.renderNetwork(*result.Network)
		return nil
	}

	cfg := result.Config
	fmt.Fprintln(r.out, "📋 Toolchain config:")
	fmt.Fprintf(r.out, "Solidity:  %s\n", cfg.Compiler.Version)
	fmt.Fprintf(r.out, "Optimizer: %s (runs: %d)\n", enabled(cfg.Compiler.Optimizer.Enabled), cfg.Compiler.Optimizer.Runs)

	if len(cfg.Plugins) > 0 {
		fmt.Fprintf(r.out, "Plugins:   %s\n", strings.Join(cfg.Plugins, ", "))
	}

	fmt.Fprintln(r.out)
	for _, name := range cfg.NetworkNames() {
		r.renderNetwork(cfg.Networks[name])
	}
	return nil
}

func (r *ConfigRenderer) renderNetwork(p config.NetworkProfile) {
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "🌐 %s\n", Title(p.Name))

	if p.IsLocalSimulation() {
		if p.Forking != nil {
			if p.Forking.URL != "" {
				fmt.Fprintf(r.out, "  Fork:        %s @ block %d\n", MaskURL(p.Forking.URL), p.Forking.BlockNumber)
			} else {
				fmt.Fprintf(r.out, "  Fork:        %s (block %d)\n", notSet(), p.Forking.BlockNumber)
			}
		}
		if p.BlockGasLimit != nil {
			fmt.Fprintf(r.out, "  Gas limit:   %d\n", *p.BlockGasLimit)
		}
		if p.InitialBaseFeePerGas != nil {
			fmt.Fprintf(r.out, "  Base fee:    %d\n", *p.InitialBaseFeePerGas)
		}
		if p.AllowUnlimitedContractSize {
			fmt.Fprintln(r.out, "  Code size:   unlimited")
		}
		fmt.Fprintf(r.out, "  Logging:     %s\n", enabled(p.LoggingEnabled))
		fmt.Fprintln(r.out)
		return
	}

	if p.RPCURL != "" {
		fmt.Fprintf(r.out, "  URL:         %s\n", MaskURL(p.RPCURL))
	} else {
		fmt.Fprintf(r.out, "  URL:         %s\n", notSet())
	}
	fmt.Fprintf(r.out, "  Accounts:    %d\n", len(p.Accounts))
	fmt.Fprintln(r.out)
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func notSet() string {
	return color.New(color.FgYellow).Sprint("(not set)")
}

package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// Render renders the list of networks
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendHeader(table.Row{"NETWORK", "RPC URL", "ACCOUNTS", "STATUS"})
	for _, network := range result.Networks {
		t.AppendRow(table.Row{network.Name, r.url(network), network.Accounts, r.status(network)})
	}
	fmt.Fprintln(r.out, t.Render())

	return nil
}

func (r *NetworksRenderer) url(n usecase.NetworkStatus) string {
	if n.Local {
		if n.ForkURL != "" {
			return "fork " + MaskURL(n.ForkURL)
		}
		return "in-process"
	}
	if n.RPCURL == "" {
		return "-"
	}
	return MaskURL(n.RPCURL)
}

func (r *NetworksRenderer) status(n usecase.NetworkStatus) string {
	switch {
	case n.Error != nil:
		return color.New(color.FgRed).Sprintf("❌ %v", n.Error)
	case n.Probe != nil:
		return color.New(color.FgGreen).Sprintf("✅ chain %d, block %d", n.Probe.ChainID, n.Probe.BlockNumber)
	case n.Local:
		return "local simulation"
	case !n.Configured:
		return color.New(color.FgYellow).Sprint("not configured")
	default:
		return "configured"
	}
}

package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// NodeRenderer renders the local node command
type NodeRenderer struct {
	out io.Writer
}

// NewNodeRenderer creates a new node renderer
func NewNodeRenderer(out io.Writer) *NodeRenderer {
	return &NodeRenderer{out: out}
}

// Render prints the command line and the endpoint it serves
func (r *NodeRenderer) Render(result *usecase.StartNodeResult) error {
	if result.Started {
		fmt.Fprintln(r.out, FormatSuccess("Local node stopped"))
		return nil
	}
	fmt.Fprintln(r.out, strings.Join(maskForkURL(result.Command), " "))
	if result.Instance != nil && result.Instance.Port != "" {
		color.New(color.FgBlue).Fprintf(r.out, "🌐 RPC URL: http://%s:%s\n", result.Instance.Host, result.Instance.Port)
	}
	return nil
}

func maskForkURL(argv []string) []string {
	out := slices.Clone(argv)
	for i := 0; i+1 < len(out); i++ {
		if out[i] == "--fork-url" {
			out[i+1] = MaskURL(out[i+1])
		}
	}
	return out
}

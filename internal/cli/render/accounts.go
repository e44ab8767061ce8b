package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// AccountsRenderer renders derived signer addresses
type AccountsRenderer struct {
	out io.Writer
}

// NewAccountsRenderer creates a new accounts renderer
func NewAccountsRenderer(out io.Writer) *AccountsRenderer {
	return &AccountsRenderer{out: out}
}

// Render renders the signer list
func (r *AccountsRenderer) Render(result *usecase.ListAccountsResult) error {
	if len(result.Accounts) == 0 {
		fmt.Fprintln(r.out, FormatWarning("No signing accounts configured"))
	} else {
		t := newTable()
		t.AppendHeader(table.Row{"NETWORK", "#", "ADDRESS"})
		for _, acc := range result.Accounts {
			addr := acc.Address.Hex()
			if acc.Error != nil {
				addr = color.New(color.FgRed).Sprintf("invalid key: %v", acc.Error)
			}
			t.AppendRow(table.Row{acc.Network, acc.Index, addr})
		}
		fmt.Fprintln(r.out, t.Render())
	}

	if len(result.Unsigned) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "Signing disabled: %s\n", strings.Join(result.Unsigned, ", "))
	}
	return nil
}

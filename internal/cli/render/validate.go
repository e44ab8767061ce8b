package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// ValidateRenderer renders validation findings
type ValidateRenderer struct {
	out     io.Writer
	verbose bool
}

// NewValidateRenderer creates a new validate renderer. Unset variables are
// only listed in verbose mode.
func NewValidateRenderer(out io.Writer, verbose bool) *ValidateRenderer {
	return &ValidateRenderer{out: out, verbose: verbose}
}

// Render renders the result of a validation run
func (r *ValidateRenderer) Render(result *usecase.ValidateConfigResult) error {
	if r.verbose && len(result.Unset) > 0 {
		color.New(color.FgYellow).Fprintln(r.out, "Unset variables (networks stay inert until set):")
		for _, u := range result.Unset {
			fmt.Fprintf(r.out, "  %-10s %s\n", u.Network, u.Variable)
		}
		fmt.Fprintln(r.out)
	}

	if result.Valid() {
		fmt.Fprintln(r.out, FormatSuccess("Configuration is valid"))
		return nil
	}

	for _, issue := range result.Issues {
		fmt.Fprintln(r.out, FormatError(issue.Error()))
	}
	return nil
}

package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// ProbeProgress shows a spinner while networks are probed
type ProbeProgress struct {
	out         io.Writer
	interactive bool
	spinner     *spinner.Spinner
}

// NewProbeProgress creates a new probe progress reporter
func NewProbeProgress(out io.Writer, interactive bool) *ProbeProgress {
	return &ProbeProgress{
		out:         out,
		interactive: interactive,
	}
}

// ProvideProgressSink picks the sink for the current session
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive {
		return NewNopSink()
	}
	return NewProbeProgress(os.Stderr, true)
}

// OnProgress handles progress events
func (p *ProbeProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if !p.interactive {
		if event.Message != "" {
			fmt.Fprintf(p.out, "[%d/%d] %s\n", event.Current, event.Total, event.Message)
		}
		return
	}

	if event.Spinner {
		if p.spinner == nil {
			p.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			p.spinner.Writer = p.out
			_ = p.spinner.Color("cyan", "bold")
		}
		p.spinner.Suffix = fmt.Sprintf(" [%d/%d] %s", event.Current, event.Total, event.Message)
		if !p.spinner.Active() {
			p.spinner.Start()
		}
		return
	}

	if p.spinner != nil && p.spinner.Active() {
		p.spinner.Stop()
	}
}

// Info prints an informational message
func (p *ProbeProgress) Info(message string) {
	p.stop()
	color.New(color.FgCyan).Fprintln(p.out, message)
}

// Error prints an error message
func (p *ProbeProgress) Error(message string) {
	p.stop()
	color.New(color.FgRed).Fprintln(p.out, message)
}

func (p *ProbeProgress) stop() {
	if p.spinner != nil && p.spinner.Active() {
		p.spinner.Stop()
	}
}

var _ usecase.ProgressSink = (*ProbeProgress)(nil)

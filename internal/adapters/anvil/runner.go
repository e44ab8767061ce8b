package anvil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os/exec"
	"strconv"

	"github.com/trebuchet-org/chainconf/internal/domain"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

const (
	DefaultBinary = "anvil"
	DefaultHost   = "127.0.0.1"
)

// DefaultPort is the port of the localhost profile.
func DefaultPort() string {
	u, err := url.Parse(config.LocalhostRPCURL)
	if err != nil || u.Port() == "" {
		return "8545"
	}
	return u.Port()
}

// BuildArgs maps a simulation profile onto anvil flags.
func BuildArgs(instance *domain.AnvilInstance) []string {
	host := instance.Host
	if host == "" {
		host = DefaultHost
	}
	port := instance.Port
	if port == "" {
		port = DefaultPort()
	}

	args := []string{"--port", port, "--host", host}

	p := instance.Profile
	if p.Forking != nil && p.Forking.URL != "" {
		args = append(args, "--fork-url", p.Forking.URL)
		if p.Forking.BlockNumber > 0 {
			args = append(args, "--fork-block-number", strconv.FormatUint(p.Forking.BlockNumber, 10))
		}
	}
	if p.InitialBaseFeePerGas != nil {
		args = append(args, "--block-base-fee-per-gas", strconv.FormatUint(*p.InitialBaseFeePerGas, 10))
	}
	if p.BlockGasLimit != nil {
		args = append(args, "--gas-limit", strconv.FormatUint(*p.BlockGasLimit, 10))
	}
	if p.AllowUnlimitedContractSize {
		args = append(args, "--disable-code-size-limit")
	}
	if !p.LoggingEnabled {
		args = append(args, "--silent")
	}
	return args
}

// Runner starts anvil in the foreground.
type Runner struct {
	Binary string
	Stdout io.Writer
	Stderr io.Writer
	log    *slog.Logger
}

// NewRunner creates a runner that discards node output until SetOutput is called.
func NewRunner(log *slog.Logger) *Runner {
	return &Runner{
		Binary: DefaultBinary,
		Stdout: io.Discard,
		Stderr: io.Discard,
		log:    log,
	}
}

// Command returns the argv that Run would execute.
func (r *Runner) Command(instance *domain.AnvilInstance) []string {
	return append([]string{r.binary()}, BuildArgs(instance)...)
}

// Run starts the node and blocks until it exits or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, instance *domain.AnvilInstance) error {
	if !instance.Profile.IsLocalSimulation() {
		return fmt.Errorf("network %s is not a local simulation profile", instance.Profile.Name)
	}

	path, err := exec.LookPath(r.binary())
	if err != nil {
		return fmt.Errorf("anvil not found in PATH: %w", err)
	}

	args := BuildArgs(instance)
	r.log.Debug("starting anvil", "path", path, "args", args)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("anvil exited: %w", err)
	}
	return nil
}

// SetOutput redirects node output.
func (r *Runner) SetOutput(stdout, stderr io.Writer) {
	r.Stdout = stdout
	r.Stderr = stderr
}

func (r *Runner) binary() string {
	if r.Binary == "" {
		return DefaultBinary
	}
	return r.Binary
}
